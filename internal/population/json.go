// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package population

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// readJSON reads one of
//
//	{"entries": [{"<name>": "...", "<value>": 1234}, ...]}
//	[{"<name>": "...", "<value>": 1234}, ...]
//	[1234, 1250, ...]
func readJSON(r io.Reader, opts Options) (*Population, error) {
	var doc interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	var entries []interface{}
	switch d := doc.(type) {
	case []interface{}:
		entries = d
	case map[string]interface{}:
		list, ok := d["entries"].([]interface{})
		if !ok {
			return nil, fmt.Errorf(`JSON object has no "entries" array`)
		}
		entries = list
	default:
		return nil, fmt.Errorf("unexpected JSON document of type %T", doc)
	}

	p := &Population{Values: make([]float64, 0, len(entries))}
	named := opts.NameField != ""
	for i, e := range entries {
		obj, isObj := e.(map[string]interface{})
		if !isObj {
			p.Values = append(p.Values, jsonValue(e))
			continue
		}
		if opts.ValueField == "" {
			return nil, fmt.Errorf("entry %d: no value field configured", i)
		}
		p.Values = append(p.Values, jsonValue(obj[opts.ValueField]))
		if named {
			name, _ := obj[opts.NameField].(string)
			p.Names = append(p.Names, name)
		}
	}
	if len(p.Names) != len(p.Values) {
		// Mixed bare values and objects; names are unusable.
		p.Names = nil
	}
	return p, nil
}

func jsonValue(v interface{}) float64 {
	switch v := v.(type) {
	case float64:
		return v
	case string:
		return parseValue(v)
	}
	// null, missing, bool, nested values.
	return math.NaN()
}
