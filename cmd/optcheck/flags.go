// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/progopts/pkg/progopts"
	"tailscale.com/types/ptr"
)

const usageText = `Usage: optcheck [flags] -- [option tokens...]

Declares options, parses the tokens after "--" against them and prints the
resolved values. Every option token must follow "--"; other arguments before
it, including one-dash spellings of the long flags below, are rejected.

Flags:
  --declare name[:type][=default]  Declare an option; repeatable or comma separated.
                                   Without a default the option is required.
                                   Types: bool byte short int long float double string stringlist
  --prefix=string                  Option prefix (default "-"); values starting with
                                   "-" need the = form, e.g. --prefix=--
  --strict                         Reject tokens that do not start with the prefix
  --help-option                    Add the shared -help option
  --format string                  table, json, yaml, toml or env (default "table")
  --env-prefix string              Variable prefix for --format env
  --list-delims string             Delimiters for stringlist values (default ",")
  --no-color                       Disable colored errors
  -h, --help                       Show this help

Exit status: 0 ok, 1 option error, 2 -help matched, 3 bad flags, 4 output error.
`

type metaFlagsParsed struct {
	Declare    []string `flag:"declare" help:"Declare an option as name[:type][=default]"`
	Prefix     string   `flag:"prefix" default:"-" help:"Option prefix"`
	Strict     bool     `flag:"strict" help:"Reject tokens without the prefix"`
	HelpOption bool     `flag:"help-option" help:"Add the shared -help option"`
	Format     string   `flag:"format" default:"table" help:"Output format"`
	EnvPrefix  string   `flag:"env-prefix" help:"Variable prefix for env output"`
	ListDelims string   `flag:"list-delims" default:"," help:"Delimiters for stringlist values"`
	NoColor    bool     `flag:"no-color" help:"Disable colored errors"`
	Help       bool     `flag:"help" short:"h" help:"Show help"`
}

var (
	errEmptyPrefix  = errors.New("empty option prefix; use --prefix=- rather than --prefix -")
	errTokensBefore = errors.New(`option tokens must follow "--"`)
)

// metaFlagNames returns the long names of optcheck's own flags.
func metaFlagNames() map[string]bool {
	names := make(map[string]bool)
	t := reflect.TypeFor[metaFlagsParsed]()
	for i := range t.NumField() {
		if name := t.Field(i).Tag.Get("flag"); name != "" {
			names[name] = true
		}
	}
	return names
}

// checkSingleDash rejects long meta flags written with one dash before "--".
// yargs accepts them, but with the default "-" prefix they are option tokens
// that were left out of the "--" section.
func checkSingleDash(args []string) error {
	names := metaFlagNames()
	for _, arg := range args {
		if arg == "--" {
			return nil
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
			continue
		}
		name, _, _ := strings.Cut(arg[1:], "=")
		if len(name) > 1 && names[name] {
			return fmt.Errorf("unexpected argument %q: %w", arg, errTokensBefore)
		}
	}
	return nil
}

// parseMetaFlags peels optcheck's own flags off args. Option tokens are the
// arguments after the first "--"; any other argument left before it is an
// error.
func parseMetaFlags(args []string) (metaFlagsParsed, []string, error) {
	if err := checkSingleDash(args); err != nil {
		return metaFlagsParsed{}, nil, err
	}
	result, err := yargs.ParseKnownFlags[metaFlagsParsed](args, yargs.KnownFlagsOptions{SplitCommaSlices: true})
	if err != nil {
		return metaFlagsParsed{}, nil, err
	}
	flags := result.Flags
	if flags.Prefix == "" {
		return metaFlagsParsed{}, nil, errEmptyPrefix
	}
	rest := result.RemainingArgs
	sep := slices.Index(rest, "--")
	if sep < 0 {
		sep = len(rest)
	}
	if sep > 0 {
		return metaFlagsParsed{}, nil, fmt.Errorf("unexpected argument %q: %w", rest[0], errTokensBefore)
	}
	var tokens []string
	if sep < len(rest) {
		tokens = slices.Clone(rest[sep+1:])
	}
	return flags, tokens, nil
}

type declaration struct {
	name string
	kind progopts.Kind
	def  *string
}

var errEmptyName = errors.New("empty option name")

// parseDeclaration parses name[:type][=default]. The type defaults to string.
func parseDeclaration(spec string) (declaration, error) {
	head, def, hasDef := strings.Cut(spec, "=")
	name, kindName, hasKind := strings.Cut(head, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return declaration{}, fmt.Errorf("invalid declaration %q: %w", spec, errEmptyName)
	}
	d := declaration{name: name, kind: progopts.String}
	if hasKind {
		k, err := progopts.ParseKind(kindName)
		if err != nil {
			return declaration{}, fmt.Errorf("invalid declaration %q: %w", spec, err)
		}
		d.kind = k
	}
	if hasDef {
		d.def = ptr.To(def)
	}
	return d, nil
}

func declare(r *progopts.Registry, specs []string) error {
	for _, spec := range specs {
		d, err := parseDeclaration(spec)
		if err != nil {
			return err
		}
		if _, err := progopts.NewOption(r, d.name, d.kind, d.def); err != nil {
			return fmt.Errorf("declaring %s: %w", d.name, err)
		}
	}
	return nil
}
