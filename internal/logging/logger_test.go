// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "json").With("file", "ratings.json")
	l.Info("loaded population", "count", 3, "error", errors.New("boom"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "loaded population", entry["message"])
	assert.Equal(t, "ratings.json", entry["file"])
	assert.EqualValues(t, 3, entry["count"])
	assert.Equal(t, "boom", entry["error"])
	assert.Contains(t, entry, "time")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "json")
	l.Debug("hidden")
	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "loud", "json")
	l.Debug("hidden")
	assert.Zero(t, buf.Len())
	l.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestGlobal(t *testing.T) {
	prev := Global()
	defer SetGlobal(prev)

	var buf bytes.Buffer
	SetGlobal(New(&buf, "debug", "json"))
	Debug("global message", "n", 1)
	assert.Contains(t, buf.String(), "global message")

	buf.Reset()
	Global().With("file", "a.txt").Warn("child")
	assert.Contains(t, buf.String(), `"file":"a.txt"`)

	SetGlobal(New(&buf, "info", "json"))
	buf.Reset()
	Debug("hidden")
	assert.Zero(t, buf.Len())
}
