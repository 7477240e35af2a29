// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package population

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var leaderboard = Options{NameField: "Username", ValueField: "Rating"}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSONLeaderboard(t *testing.T) {
	path := writeFile(t, "board.json", `{"entries": [
		{"Username": "ZombieReaper", "Rating": 8123},
		{"Username": "Death913", "Rating": 8350.5},
		{"Username": "ghost", "Rating": null},
		{"Username": "texty", "Rating": "7900"},
		{"Username": "norating"}
	]}`)

	p, err := Load(path, leaderboard)
	require.NoError(t, err)
	require.Len(t, p.Values, 5)
	assert.Equal(t, []string{"ZombieReaper", "Death913", "ghost", "texty", "norating"}, p.Names)
	assert.Equal(t, 8123.0, p.Values[0])
	assert.Equal(t, 8350.5, p.Values[1])
	assert.True(t, math.IsNaN(p.Values[2]))
	assert.Equal(t, 7900.0, p.Values[3])
	assert.True(t, math.IsNaN(p.Values[4]))
	assert.Equal(t, 2, p.Missing())

	v, err := p.Lookup("Death913")
	require.NoError(t, err)
	assert.Equal(t, 8350.5, v)

	_, err = p.Lookup("nobody")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = p.Lookup("ghost")
	assert.Error(t, err)
}

func TestLoadJSONArray(t *testing.T) {
	p, err := Read(strings.NewReader(`[3, 1.5, null, "x", 2]`), JSON, Options{})
	require.NoError(t, err)
	require.Len(t, p.Values, 5)
	assert.Equal(t, 3.0, p.Values[0])
	assert.True(t, math.IsNaN(p.Values[2]))
	assert.True(t, math.IsNaN(p.Values[3]))
	assert.Nil(t, p.Names)

	_, err = Read(strings.NewReader(`{"players": []}`), JSON, leaderboard)
	assert.Error(t, err)
	_, err = Read(strings.NewReader(`{`), JSON, leaderboard)
	assert.Error(t, err)
	_, err = Read(strings.NewReader(`"hello"`), JSON, leaderboard)
	assert.Error(t, err)
}

func TestLookupAmbiguous(t *testing.T) {
	p := &Population{Values: []float64{1, 2}, Names: []string{"a", "a"}}
	_, err := p.Lookup("a")
	assert.ErrorIs(t, err, ErrAmbiguousEntry)
}

func TestReadText(t *testing.T) {
	p, err := Read(strings.NewReader("1\n\n# comment\n 2.5 \n-3\n"), Text, Options{})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, p.Values)
	assert.Nil(t, p.Names)

	_, err = Read(strings.NewReader("1\nabc\n"), Text, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadCSV(t *testing.T) {
	in := "username,rating,region\nalice,100,eu\nbob,,us\ncarol,n/a\ndave,250,eu\n"
	p, err := Read(strings.NewReader(in), CSV, leaderboard)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, p.Names)
	require.Len(t, p.Values, 4)
	assert.Equal(t, 100.0, p.Values[0])
	assert.True(t, math.IsNaN(p.Values[1]))
	assert.True(t, math.IsNaN(p.Values[2]))
	assert.Equal(t, 250.0, p.Values[3])

	_, err = Read(strings.NewReader("name,score\nx,1\n"), CSV, leaderboard)
	assert.Error(t, err)
	_, err = Read(strings.NewReader(""), CSV, leaderboard)
	assert.Error(t, err)
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Username", "Rating"},
		{"alice", 1200},
		{"bob", 1350.5},
		{"carol", ""},
	}
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellName, &row))
	}
	path := filepath.Join(t.TempDir(), "board.xlsx")
	require.NoError(t, f.SaveAs(path))

	p, err := Load(path, leaderboard)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, p.Names)
	require.Len(t, p.Values, 3)
	assert.Equal(t, 1200.0, p.Values[0])
	assert.Equal(t, 1350.5, p.Values[1])
	assert.True(t, math.IsNaN(p.Values[2]))

	_, err = Load(path, Options{ValueField: "Rating", Sheet: "Missing"})
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, JSON, DetectFormat("board.JSON"))
	assert.Equal(t, CSV, DetectFormat("a/b.csv"))
	assert.Equal(t, XLSX, DetectFormat("ratings.xlsx"))
	assert.Equal(t, Text, DetectFormat("ratings.txt"))
	assert.Equal(t, Text, DetectFormat("-"))

	_, err := Read(strings.NewReader("1"), Format("parquet"), Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	assert.Error(t, err)
}
