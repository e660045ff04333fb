// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command optcheck declares a set of options on its own command line, parses
// the remaining tokens against them and prints the resolved values. It is
// meant for shell scripts:
//
//	eval "$(optcheck --format env --declare host,port:int=80 -- "$@")"
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/yeetrun/progopts/pkg/progopts"
	"golang.org/x/term"
)

const (
	exitOK          = 0
	exitOptionError = 1 // tokens did not match the declared options
	exitHelp        = 2 // the -help option was matched
	exitBadFlags    = 3 // optcheck's own flags or declarations are invalid
	exitOutputError = 4
)

func main() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		color.NoColor = true
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "optcheck: ", 0)

	flags, tokens, err := parseMetaFlags(args)
	if err != nil {
		printCLIError(stderr, err)
		return exitBadFlags
	}
	if flags.NoColor {
		color.NoColor = true
	}
	if flags.Help {
		fmt.Fprint(stdout, usageText)
		return exitOK
	}
	render, ok := renderers[flags.Format]
	if !ok {
		printCLIError(stderr, fmt.Errorf("unknown format %q", flags.Format))
		return exitBadFlags
	}

	r := progopts.NewRegistry(
		progopts.WithPrefix(flags.Prefix),
		progopts.WithOutput(stderr),
		progopts.WithStrictPrefix(flags.Strict),
	)
	if err := declare(r, flags.Declare); err != nil {
		printCLIError(stderr, err)
		return exitBadFlags
	}
	if flags.HelpOption {
		r.AddHelpOption()
	}

	if err := r.Parse(tokens); err != nil {
		if errors.Is(err, progopts.ErrHelp) {
			return exitHelp
		}
		printCLIError(stderr, err)
		fmt.Fprintf(stderr, "Usage : \n%s\n", r.PrintableDescription())
		return exitOptionError
	}

	opts := r.Options()
	if err := checkValues(opts, flags.ListDelims); err != nil {
		printCLIError(stderr, err)
		return exitOptionError
	}
	cfg := renderConfig{
		prefix:     flags.Prefix,
		envPrefix:  flags.EnvPrefix,
		listDelims: flags.ListDelims,
	}
	if err := render(stdout, opts, cfg); err != nil {
		logger.Printf("failed to write %s output: %v", flags.Format, err)
		return exitOutputError
	}
	return exitOK
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, color.RedString("Error: %v", err))
}
