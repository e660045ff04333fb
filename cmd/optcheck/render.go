// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/progopts/pkg/env"
	"github.com/yeetrun/progopts/pkg/progopts"
	"gopkg.in/yaml.v3"
	"tailscale.com/util/mak"
)

type renderFunc func(w io.Writer, opts []*progopts.Option, cfg renderConfig) error

type renderConfig struct {
	prefix     string
	envPrefix  string
	listDelims string
}

var renderers = map[string]renderFunc{
	"table": renderTable,
	"json":  renderJSON,
	"yaml":  renderYAML,
	"toml":  renderTOML,
	"env":   renderEnv,
}

// report is the structured form written by the json, yaml and toml formats.
type report struct {
	Prefix string         `json:"prefix" yaml:"prefix" toml:"prefix"`
	Found  []string       `json:"found,omitempty" yaml:"found,omitempty" toml:"found,omitempty"`
	Values map[string]any `json:"values,omitempty" yaml:"values,omitempty" toml:"values,omitempty"`
}

// typedValue converts the stored text of o to its Go type. ok is false when
// the option has no value.
func typedValue(o *progopts.Option, listDelims string) (v any, ok bool, err error) {
	if _, set := o.Value(); !set {
		return nil, false, nil
	}
	switch o.Kind() {
	case progopts.Bool:
		v, err = o.AsBool()
	case progopts.Byte:
		v, err = o.AsByte()
	case progopts.Short:
		v, err = o.AsShort()
	case progopts.Int:
		v, err = o.AsInt()
	case progopts.Long:
		v, err = o.AsLong()
	case progopts.Float:
		v, err = o.AsFloat()
	case progopts.Double:
		v, err = o.AsDouble()
	case progopts.StringList:
		v, err = o.AsStringList(listDelims, false)
	default:
		v, err = o.AsString()
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// checkValues reports the first option whose value does not parse as its
// type.
func checkValues(opts []*progopts.Option, listDelims string) error {
	for _, o := range opts {
		if _, _, err := typedValue(o, listDelims); err != nil {
			return err
		}
	}
	return nil
}

func buildReport(opts []*progopts.Option, cfg renderConfig) (report, error) {
	rep := report{Prefix: cfg.prefix}
	for _, o := range opts {
		if o.Found() {
			rep.Found = append(rep.Found, o.Name())
		}
		v, ok, err := typedValue(o, cfg.listDelims)
		if err != nil {
			return report{}, err
		}
		if ok {
			mak.Set(&rep.Values, o.Name(), v)
		}
	}
	return rep, nil
}

func renderTable(w io.Writer, opts []*progopts.Option, cfg renderConfig) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tREQUIRED\tFOUND\tVALUE")
	for _, o := range opts {
		val, ok := o.Value()
		if !ok {
			val = "-"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%t\t%t\t%s\n", cfg.prefix, o.Name(), o.Kind(), o.Required(), o.Found(), val)
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, opts []*progopts.Option, cfg renderConfig) error {
	rep, err := buildReport(opts, cfg)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func renderYAML(w io.Writer, opts []*progopts.Option, cfg renderConfig) error {
	rep, err := buildReport(opts, cfg)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}

func renderTOML(w io.Writer, opts []*progopts.Option, cfg renderConfig) error {
	rep, err := buildReport(opts, cfg)
	if err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(rep)
}

func renderEnv(w io.Writer, opts []*progopts.Option, cfg renderConfig) error {
	vars := make([]env.Var, 0, len(opts))
	for _, o := range opts {
		val, ok := o.Value()
		vars = append(vars, env.Var{Name: o.Name(), Value: val, Set: ok})
	}
	return env.Write(w, cfg.envPrefix, vars)
}
