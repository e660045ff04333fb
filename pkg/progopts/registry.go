// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progopts

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// DefaultPrefix is the prefix used to mark option tokens.
const DefaultPrefix = "-"

// Registry holds the options accepted by a program.
//
// A Registry is not safe for concurrent use. Callers that share one between
// goroutines must serialize AddOption, Parse and value reads themselves.
type Registry struct {
	prefix  string
	options map[string]*Option
	out     io.Writer
	strict  bool
}

// RegistryOption configures a Registry created by NewRegistry.
type RegistryOption func(*Registry)

// WithPrefix sets the prefix that marks option tokens. The default is "-".
func WithPrefix(prefix string) RegistryOption {
	return func(r *Registry) {
		r.prefix = prefix
	}
}

// WithOutput sets where usage is written when help is requested. The default
// is os.Stderr.
func WithOutput(w io.Writer) RegistryOption {
	return func(r *Registry) {
		if w != nil {
			r.out = w
		}
	}
}

// WithStrictPrefix makes Parse reject tokens that do not start with the
// prefix. By default the prefix length is dropped from every token without
// checking it, and a mismatched token surfaces as an unknown option.
func WithStrictPrefix(strict bool) RegistryOption {
	return func(r *Registry) {
		r.strict = strict
	}
}

// NewRegistry returns an empty registry using DefaultPrefix and writing help
// output to os.Stderr, adjusted by opts.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		prefix:  DefaultPrefix,
		options: make(map[string]*Option),
		out:     os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Prefix returns the prefix that marks option tokens.
func (r *Registry) Prefix() string { return r.prefix }

// Len returns the number of registered options.
func (r *Registry) Len() int { return len(r.options) }

// Lookup returns the option registered under name.
func (r *Registry) Lookup(name string) (*Option, bool) {
	o, ok := r.options[name]
	return o, ok
}

// Options returns the registered options in display order.
func (r *Registry) Options() []*Option {
	opts := make([]*Option, 0, len(r.options))
	for _, o := range r.options {
		opts = append(opts, o)
	}
	slices.SortFunc(opts, Compare)
	return opts
}

// AddOption registers o and returns the number of options afterwards. It is
// called by NewOption; most programs do not call it directly.
func (r *Registry) AddOption(o *Option) (int, error) {
	if o == nil {
		return 0, ErrNilValue
	}
	if _, ok := r.options[o.name]; ok {
		return 0, &OptionError{Name: o.name, Err: ErrDuplicateOption}
	}
	r.options[o.name] = o
	return len(r.options), nil
}

// AddHelpOption registers HelpOption() under "help", replacing any option
// already registered with that name.
func (r *Registry) AddHelpOption() {
	r.options[helpOption.name] = helpOption
}

// Parse matches tokens against the registered options and stores their
// values. Boolean options take no value and flip each time they appear;
// every other option takes the following token as its value.
//
// Options updated before a failure keep their new values. If HelpOption() is
// matched, the usage description is written to the registry output and
// ErrHelp is returned.
func (r *Registry) Parse(tokens []string) error {
	for i := 0; i < len(tokens); i++ {
		name, err := r.optionName(tokens[i])
		if err != nil {
			return err
		}
		o, ok := r.options[name]
		if !ok {
			return &OptionError{Name: name, Err: ErrUnknownOption}
		}

		if o == helpOption {
			fmt.Fprintf(r.out, "Usage : \n%s\n", r.PrintableDescription())
			return ErrHelp
		}

		if o.isBool {
			o.toggle()
		} else {
			if i+1 >= len(tokens) {
				return &OptionError{Name: o.name, Err: ErrMissingValue}
			}
			i++ // consume the value
			o.set(tokens[i])
		}
		o.found = true
	}

	for _, o := range r.Options() {
		if o.required && !o.found {
			return &OptionError{Name: o.name, Err: ErrMissingRequired}
		}
	}
	return nil
}

// optionName strips the prefix length from tok.
func (r *Registry) optionName(tok string) (string, error) {
	if r.strict && !strings.HasPrefix(tok, r.prefix) {
		return "", &OptionError{Name: tok, Err: ErrMalformedToken}
	}
	if len(tok) < len(r.prefix) {
		return "", nil
	}
	return tok[len(r.prefix):], nil
}

// PrintableDescription renders the usage of every option in display order,
// three per line.
func (r *Registry) PrintableDescription() string {
	var sb strings.Builder
	for i, o := range r.Options() {
		sb.WriteByte(' ')
		sb.WriteString(o.Usage(r.prefix))
		if (i+1)%3 == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// String describes the registry and all options for debugging.
func (r *Registry) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ProgramOptions : [optionPrefix=%s], ", r.prefix)
	for _, o := range r.Options() {
		sb.WriteString(o.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
