// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package population

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readText reads newline-separated numbers. Blank lines and lines
// starting with '#' are skipped; any other unparsable line is an
// error.
func readText(r io.Reader) (*Population, error) {
	p := new(Population)
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		p.Values = append(p.Values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p, nil
}
