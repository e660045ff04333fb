// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progopts

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

var helpOption = mustDetached("help", Bool, strconv.FormatBool(false))

// HelpOption returns the shared "help" option. Registries that call
// AddHelpOption hold this exact pointer, and Parse recognizes it by identity.
func HelpOption() *Option { return helpOption }

// Option is a single named, typed command-line setting.
//
// The value is kept as text and converted by the typed accessors on every
// call. An Option created without a default is required.
type Option struct {
	name     string
	kind     Kind
	isBool   bool
	def      *string
	value    *string
	required bool
	found    bool
	seq      int
}

// NewOption creates an option of the given kind and registers it with r.
// A nil def makes the option required.
func NewOption(r *Registry, name string, kind Kind, def *string) (*Option, error) {
	if r == nil || name == "" {
		return nil, ErrNilValue
	}
	o, err := newOption(name, kind, def)
	if err != nil {
		return nil, err
	}
	seq, err := r.AddOption(o)
	if err != nil {
		return nil, err
	}
	o.seq = seq
	return o, nil
}

// NewStringOption creates a string option and registers it with r.
func NewStringOption(r *Registry, name string, def *string) (*Option, error) {
	return NewOption(r, name, String, def)
}

// NewBoolOption creates a boolean option and registers it with r. When
// found while parsing, the option flips to the other value.
func NewBoolOption(r *Registry, name string, def bool) (*Option, error) {
	d := strconv.FormatBool(def)
	return NewOption(r, name, Bool, &d)
}

// NewDetachedOption creates an option that belongs to no registry. Its
// sequence number is always 0. It is meant for shared options such as
// the help option that may be placed into several registries.
func NewDetachedOption(name string, kind Kind, def *string) (*Option, error) {
	if name == "" {
		return nil, ErrNilValue
	}
	return newOption(name, kind, def)
}

func mustDetached(name string, kind Kind, def string) *Option {
	o, err := NewDetachedOption(name, kind, &def)
	if err != nil {
		panic(err)
	}
	return o
}

func newOption(name string, kind Kind, def *string) (*Option, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("option %s: invalid kind %v", name, kind)
	}
	o := &Option{
		name:     name,
		kind:     kind,
		isBool:   kind == Bool,
		required: def == nil,
	}
	if def != nil {
		d := *def
		o.def = &d
		v := d
		o.value = &v
	}
	return o, nil
}

// Name returns the option name without the registry prefix.
func (o *Option) Name() string { return o.name }

// Kind returns the value kind of the option.
func (o *Option) Kind() Kind { return o.kind }

// IsBool reports whether the option takes no value and toggles instead.
func (o *Option) IsBool() bool { return o.isBool }

// Required reports whether the option was created without a default.
func (o *Option) Required() bool { return o.required }

// Seq returns the declaration order assigned at registration. Detached
// options return 0.
func (o *Option) Seq() int { return o.seq }

// Found reports whether the option was matched by a parse pass.
func (o *Option) Found() bool { return o.found }

// Value returns the raw stored text and whether it is set.
func (o *Option) Value() (string, bool) {
	if o.value == nil {
		return "", false
	}
	return *o.value, true
}

func (o *Option) set(v string) {
	o.value = &v
}

// toggle flips a boolean option starting from its current value. Unset or
// unparsable text counts as false.
func (o *Option) toggle() {
	var cur bool
	if o.value != nil {
		cur, _ = strconv.ParseBool(*o.value)
	}
	o.set(strconv.FormatBool(!cur))
}

// text returns the stored text after checking the requested kind.
func (o *Option) text(want Kind) (string, error) {
	if o.kind != want {
		return "", &TypeError{Name: o.name, Have: o.kind, Want: want}
	}
	if o.value == nil {
		return "", &ValueError{Name: o.name, Kind: o.kind, Err: ErrNoValue}
	}
	return *o.value, nil
}

func (o *Option) valueError(s string, err error) error {
	return &ValueError{Name: o.name, Kind: o.kind, Value: s, Err: err}
}

func (o *Option) signed(want Kind, bits int) (int64, error) {
	s, err := o.text(want)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, o.valueError(s, err)
	}
	return n, nil
}

func (o *Option) float(want Kind, bits int) (float64, error) {
	s, err := o.text(want)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, o.valueError(s, err)
	}
	return f, nil
}

// AsBool returns the value of a Bool option.
func (o *Option) AsBool() (bool, error) {
	s, err := o.text(Bool)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, o.valueError(s, err)
	}
	return b, nil
}

// AsByte returns the value of a Byte option as a signed 8-bit integer.
func (o *Option) AsByte() (int8, error) {
	n, err := o.signed(Byte, 8)
	return int8(n), err
}

// AsShort returns the value of a Short option.
func (o *Option) AsShort() (int16, error) {
	n, err := o.signed(Short, 16)
	return int16(n), err
}

// AsInt returns the value of an Int option.
func (o *Option) AsInt() (int32, error) {
	n, err := o.signed(Int, 32)
	return int32(n), err
}

// AsLong returns the value of a Long option.
func (o *Option) AsLong() (int64, error) {
	return o.signed(Long, 64)
}

// AsFloat returns the value of a Float option.
func (o *Option) AsFloat() (float32, error) {
	f, err := o.float(Float, 32)
	return float32(f), err
}

// AsDouble returns the value of a Double option.
func (o *Option) AsDouble() (float64, error) {
	return o.float(Double, 64)
}

// AsString returns the value of a String option.
func (o *Option) AsString() (string, error) {
	return o.text(String)
}

// AsStringList splits the value of a String or StringList option on any
// character in delims. Empty fields between adjacent delimiters are dropped.
// If returnDelims is set, each delimiter is also returned as its own element,
// in place.
func (o *Option) AsStringList(delims string, returnDelims bool) ([]string, error) {
	want := String
	if o.kind == StringList {
		want = StringList
	}
	s, err := o.text(want)
	if err != nil {
		return nil, err
	}
	return tokenize(s, delims, returnDelims), nil
}

func tokenize(s, delims string, returnDelims bool) []string {
	out := make([]string, 0)
	start := -1
	for i, r := range s {
		if !strings.ContainsRune(delims, r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, s[start:i])
			start = -1
		}
		if returnDelims {
			out = append(out, string(r))
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

// Usage returns how the option is written on a command line, e.g.
// "[-name value]" for an optional value option or "-name" for a required
// boolean.
func (o *Option) Usage(prefix string) string {
	var sb strings.Builder
	if !o.required {
		sb.WriteByte('[')
	}
	sb.WriteString(prefix)
	sb.WriteString(o.name)
	if !o.isBool {
		sb.WriteString(" value")
	}
	if !o.required {
		sb.WriteByte(']')
	}
	return sb.String()
}

// String describes the option state for debugging.
func (o *Option) String() string {
	def := "none (required)"
	if o.def != nil {
		def = *o.def
	}
	val := "<unset>"
	if o.value != nil {
		val = *o.value
	}
	return fmt.Sprintf("Option : [name=%s], [defaultValue=%s], [seq =%d],[found =%t],[type=%s], [isBool=%t], [value=%s]",
		o.name, def, o.seq, o.found, o.kind, o.isBool, val)
}

// Compare orders options by sequence number, then by name. Only detached
// options share a sequence number.
func Compare(a, b *Option) int {
	if c := cmp.Compare(a.seq, b.seq); c != 0 {
		return c
	}
	return strings.Compare(a.name, b.name)
}
