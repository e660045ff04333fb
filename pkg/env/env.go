// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env renders option values as shell variable assignments.
package env

import (
	"fmt"
	"io"
	"strings"
)

// Var is a single named value. Unset vars are not written.
type Var struct {
	Name  string
	Value string
	Set   bool
}

// Write writes one KEY='value' line per set var, suitable for eval in a POSIX
// shell.
func Write(w io.Writer, prefix string, vars []Var) error {
	for _, v := range vars {
		if !v.Set {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", Key(prefix, v.Name), Quote(v.Value)); err != nil {
			return fmt.Errorf("failed to write %s: %w", v.Name, err)
		}
	}
	return nil
}

// Key builds a variable name from prefix and name. Letters are upper-cased
// and anything outside [A-Z0-9_] becomes '_'. A leading digit gets a '_'.
func Key(prefix, name string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(prefix + name) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	key := sb.String()
	if key == "" || (key[0] >= '0' && key[0] <= '9') {
		key = "_" + key
	}
	return key
}

// Quote single-quotes s for a POSIX shell.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
