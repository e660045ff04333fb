// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progopts

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"tailscale.com/types/ptr"
)

func mustOption(t *testing.T, r *Registry, name string, kind Kind, def *string) *Option {
	t.Helper()
	o, err := NewOption(r, name, kind, def)
	if err != nil {
		t.Fatalf("NewOption(%q) error = %v", name, err)
	}
	return o
}

func TestTypedAccessors(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		name string
		kind Kind
		val  string
		get  func(*Option) (any, error)
		want any
	}{
		{"bool", Bool, "true", func(o *Option) (any, error) { return o.AsBool() }, true},
		{"byte", Byte, "-128", func(o *Option) (any, error) { return o.AsByte() }, int8(-128)},
		{"short", Short, "32767", func(o *Option) (any, error) { return o.AsShort() }, int16(math.MaxInt16)},
		{"int", Int, "+42", func(o *Option) (any, error) { return o.AsInt() }, int32(42)},
		{"long", Long, "-9000000000", func(o *Option) (any, error) { return o.AsLong() }, int64(-9000000000)},
		{"float", Float, "1.5", func(o *Option) (any, error) { return o.AsFloat() }, float32(1.5)},
		{"double", Double, "2.25", func(o *Option) (any, error) { return o.AsDouble() }, 2.25},
		{"string", String, "hello", func(o *Option) (any, error) { return o.AsString() }, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := mustOption(t, r, tt.name, tt.kind, ptr.To(tt.val))
			got, err := tt.get(o)
			if err != nil {
				t.Fatalf("accessor error = %v", err)
			}
			if got != tt.want {
				t.Errorf("value = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestAccessorWrongType(t *testing.T) {
	r := NewRegistry()
	// Lexically valid for every kind, so only the kind check can fail.
	o := mustOption(t, r, "n", String, ptr.To("1"))
	b := mustOption(t, r, "b", Bool, ptr.To("true"))

	checks := map[string]func() error{
		"AsBool":   func() error { _, err := o.AsBool(); return err },
		"AsByte":   func() error { _, err := o.AsByte(); return err },
		"AsShort":  func() error { _, err := o.AsShort(); return err },
		"AsInt":    func() error { _, err := o.AsInt(); return err },
		"AsLong":   func() error { _, err := o.AsLong(); return err },
		"AsFloat":  func() error { _, err := o.AsFloat(); return err },
		"AsDouble": func() error { _, err := o.AsDouble(); return err },
		"AsString": func() error { _, err := b.AsString(); return err },
		"AsStringList": func() error {
			_, err := b.AsStringList(",", false)
			return err
		},
	}
	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			err := check()
			if !errors.Is(err, ErrWrongType) {
				t.Fatalf("error = %v, want ErrWrongType", err)
			}
			var te *TypeError
			if !errors.As(err, &te) {
				t.Fatalf("error %T is not a *TypeError", err)
			}
		})
	}
}

func TestAccessorUnsetRequired(t *testing.T) {
	r := NewRegistry()
	o := mustOption(t, r, "port", Int, nil)
	if !o.Required() {
		t.Fatal("option without default should be required")
	}

	_, err := o.AsInt()
	if !errors.Is(err, ErrNoValue) {
		t.Fatalf("AsInt() error = %v, want ErrNoValue", err)
	}
	if errors.Is(err, ErrWrongType) {
		t.Fatalf("AsInt() error = %v, must not be ErrWrongType", err)
	}
	var ve *ValueError
	if !errors.As(err, &ve) || ve.Name != "port" {
		t.Fatalf("AsInt() error = %#v, want *ValueError for port", err)
	}
}

func TestAccessorParseFailure(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		name    string
		kind    Kind
		val     string
		get     func(*Option) error
		wantErr error
	}{
		{"int-syntax", Int, "abc", func(o *Option) error { _, err := o.AsInt(); return err }, strconv.ErrSyntax},
		{"byte-range", Byte, "200", func(o *Option) error { _, err := o.AsByte(); return err }, strconv.ErrRange},
		{"short-range", Short, "40000", func(o *Option) error { _, err := o.AsShort(); return err }, strconv.ErrRange},
		{"long-syntax", Long, "1.0", func(o *Option) error { _, err := o.AsLong(); return err }, strconv.ErrSyntax},
		{"double-syntax", Double, "x1", func(o *Option) error { _, err := o.AsDouble(); return err }, strconv.ErrSyntax},
		{"bool-syntax", Bool, "yes", func(o *Option) error { _, err := o.AsBool(); return err }, strconv.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := mustOption(t, r, tt.name, tt.kind, ptr.To(tt.val))
			err := tt.get(o)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var ve *ValueError
			if !errors.As(err, &ve) {
				t.Fatalf("error %T is not a *ValueError", err)
			}
			if ve.Value != tt.val {
				t.Errorf("ValueError.Value = %q, want %q", ve.Value, tt.val)
			}
		})
	}
}

func TestAsStringList(t *testing.T) {
	tests := []struct {
		name         string
		kind         Kind
		val          string
		delims       string
		returnDelims bool
		want         []string
	}{
		{"skip-empty", String, "a,b,,c", ",", false, []string{"a", "b", "c"}},
		{"with-delims", String, "a,b,,c", ",", true, []string{"a", ",", "b", ",", ",", "c"}},
		{"multi-delims", String, "x y;z", " ;", false, []string{"x", "y", "z"}},
		{"leading-trailing", String, ";a;", ";", true, []string{";", "a", ";"}},
		{"no-delims", String, "abc", "", false, []string{"abc"}},
		{"empty", String, "", ",", false, []string{}},
		{"list-kind", StringList, "p:q", ":", false, []string{"p", "q"}},
		{"unicode", String, "α→β", "→", true, []string{"α", "→", "β"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewDetachedOption(tt.name, tt.kind, ptr.To(tt.val))
			if err != nil {
				t.Fatal(err)
			}
			got, err := o.AsStringList(tt.delims, tt.returnDelims)
			if err != nil {
				t.Fatalf("AsStringList() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AsStringList() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOptionUsage(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		opt  *Option
		want string
	}{
		{mustOption(t, r, "opt", String, ptr.To("")), "[-opt value]"},
		{mustOption(t, r, "req", String, nil), "-req value"},
		{mustOption(t, r, "flag", Bool, ptr.To("false")), "[-flag]"},
		{mustOption(t, r, "must", Bool, nil), "-must"},
	}
	for _, tt := range tests {
		if got := tt.opt.Usage("-"); got != tt.want {
			t.Errorf("Usage(%s) = %q, want %q", tt.opt.Name(), got, tt.want)
		}
	}
	if got := tests[0].opt.Usage("--"); got != "[--opt value]" {
		t.Errorf("Usage(--) = %q, want %q", got, "[--opt value]")
	}
}

func TestNewOptionErrors(t *testing.T) {
	if _, err := NewOption(nil, "x", String, nil); !errors.Is(err, ErrNilValue) {
		t.Errorf("nil registry error = %v, want ErrNilValue", err)
	}
	if _, err := NewOption(NewRegistry(), "", String, nil); !errors.Is(err, ErrNilValue) {
		t.Errorf("empty name error = %v, want ErrNilValue", err)
	}
	if _, err := NewDetachedOption("", Bool, nil); !errors.Is(err, ErrNilValue) {
		t.Errorf("detached empty name error = %v, want ErrNilValue", err)
	}
	if _, err := NewOption(NewRegistry(), "x", Kind(99), nil); err == nil {
		t.Error("invalid kind should fail")
	}
}

func TestNewOptionDuplicate(t *testing.T) {
	r := NewRegistry()
	mustOption(t, r, "name", String, nil)
	_, err := NewStringOption(r, "name", ptr.To("other"))
	if !errors.Is(err, ErrDuplicateOption) {
		t.Fatalf("error = %v, want ErrDuplicateOption", err)
	}
	var oe *OptionError
	if !errors.As(err, &oe) || oe.Name != "name" {
		t.Fatalf("error = %#v, want *OptionError for name", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestBoolOptionConstructor(t *testing.T) {
	r := NewRegistry()
	o, err := NewBoolOption(r, "verbose", true)
	if err != nil {
		t.Fatal(err)
	}
	if !o.IsBool() || o.Required() {
		t.Fatalf("IsBool = %t, Required = %t, want true, false", o.IsBool(), o.Required())
	}
	if v, _ := o.Value(); v != "true" {
		t.Errorf("Value() = %q, want %q", v, "true")
	}
}

func TestSeqAssignment(t *testing.T) {
	r := NewRegistry()
	a := mustOption(t, r, "a", String, nil)
	b := mustOption(t, r, "b", String, nil)
	if a.Seq() != 1 || b.Seq() != 2 {
		t.Errorf("Seq = %d, %d, want 1, 2", a.Seq(), b.Seq())
	}
	if got := HelpOption().Seq(); got != 0 {
		t.Errorf("HelpOption().Seq() = %d, want 0", got)
	}
}

func TestCompare(t *testing.T) {
	x, _ := NewDetachedOption("x", Bool, ptr.To("false"))
	y, _ := NewDetachedOption("y", Bool, ptr.To("false"))
	r := NewRegistry()
	a := mustOption(t, r, "z", String, nil)

	if Compare(x, y) >= 0 {
		t.Error("equal seq should order by name")
	}
	if Compare(a, x) <= 0 {
		t.Error("higher seq should sort after seq 0")
	}
	if Compare(x, x) != 0 {
		t.Error("option should compare equal to itself")
	}
}

func TestOptionString(t *testing.T) {
	r := NewRegistry()
	o := mustOption(t, r, "host", String, nil)
	want := "Option : [name=host], [defaultValue=none (required)], [seq =1],[found =false],[type=string], [isBool=false], [value=<unset>]"
	if got := o.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"bool":       Bool,
		"Boolean":    Bool,
		"byte":       Byte,
		"int16":      Short,
		"INT":        Int,
		"long":       Long,
		"float32":    Float,
		"double":     Double,
		"string":     String,
		"stringlist": StringList,
		"list":       StringList,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseKind("complex"); err == nil {
		t.Error("ParseKind(complex) should fail")
	}
}
