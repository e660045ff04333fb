// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package progopts declares the options a program accepts and parses raw
// argument tokens against them.
//
// Options are typed, and either have a default or are required. Values are
// stored as text and converted when read through the typed accessors.
//
// # Basic Usage
//
//	r := progopts.NewRegistry()
//	host, _ := progopts.NewStringOption(r, "host", nil) // required
//	port, _ := progopts.NewOption(r, "port", progopts.Int, ptr.To("8080"))
//	verbose, _ := progopts.NewBoolOption(r, "v", false)
//	r.AddHelpOption()
//
//	if err := r.Parse(os.Args[1:]); err != nil {
//	    if errors.Is(err, progopts.ErrHelp) {
//	        os.Exit(2) // usage was already written to stderr
//	    }
//	    fmt.Fprintf(os.Stderr, "%v\nUsage : \n%s\n", err, r.PrintableDescription())
//	    os.Exit(1)
//	}
//	p, err := port.AsInt()
//
// # Token Syntax
//
// Every option token is the registry prefix (default "-") followed by the
// option name. Non-boolean options take the next token as their value, as a
// separate argument:
//
//	-host example.com -port 9000 -v
//
// Boolean options take no value. Each occurrence flips the current value, so
// "-v -v" leaves it at its default.
//
// # Usage Text
//
// PrintableDescription lists options in declaration order, three per line.
// Detached options such as HelpOption() have no declaration order and come
// first, by name:
//
//	[-help] -host value [-port value]
//	[-v]
//
// Optional options are bracketed and non-boolean options are followed by
// "value".
package progopts
