// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progopts

import (
	"fmt"
	"strings"
)

// Kind identifies the value type of an Option.
type Kind int

// Value kinds. The zero Kind is invalid.
const (
	Bool       Kind = iota + 1 // true or false, parsed with strconv.ParseBool
	Byte                       // signed 8-bit integer
	Short                      // signed 16-bit integer
	Int                        // signed 32-bit integer
	Long                       // signed 64-bit integer
	Float                      // 32-bit floating point
	Double                     // 64-bit floating point
	String                     // raw text
	StringList                 // text split on caller-supplied delimiters
)

var kindNames = map[Kind]string{
	Bool:       "bool",
	Byte:       "byte",
	Short:      "short",
	Int:        "int",
	Long:       "long",
	Float:      "float",
	Double:     "double",
	String:     "string",
	StringList: "stringlist",
}

// Aliases accepted by ParseKind in addition to the canonical names.
var kindAliases = map[string]Kind{
	"boolean": Bool,
	"int8":    Byte,
	"int16":   Short,
	"int32":   Int,
	"int64":   Long,
	"float32": Float,
	"float64": Double,
	"strings": StringList,
	"list":    StringList,
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind returns the Kind named by s. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown option type %q", s)
}
