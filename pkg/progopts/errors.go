// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progopts

import (
	"errors"
	"fmt"
)

// Sentinel errors. Returned errors wrap one of these, so callers should test
// with errors.Is.
var (
	// ErrNilValue is returned when a registry, option or name is missing.
	ErrNilValue = errors.New("null values are not allowed")

	// ErrDuplicateOption is returned when an option name is registered twice.
	ErrDuplicateOption = errors.New("duplicate option")

	// ErrUnknownOption is returned when a token names no registered option.
	ErrUnknownOption = errors.New("unknown option")

	// ErrMalformedToken is returned in strict-prefix mode when a token does
	// not start with the registry prefix.
	ErrMalformedToken = errors.New("malformed option token")

	// ErrMissingValue is returned when a value option is the last token.
	ErrMissingValue = errors.New("missing value for option")

	// ErrMissingRequired is returned when a required option was never found.
	ErrMissingRequired = errors.New("missing required option")

	// ErrWrongType is returned when an accessor does not match the option kind.
	ErrWrongType = errors.New("incorrect type")

	// ErrNoValue is returned when an option without a value is read.
	ErrNoValue = errors.New("no value set")

	// ErrHelp is returned by Parse when the shared help option was matched.
	// The usage text has already been written; callers should exit non-zero.
	ErrHelp = errors.New("help requested")
)

// OptionError reports a registration or parse failure for a named option.
type OptionError struct {
	Name string // Option name, or the stripped token for unknown options
	Err  error  // One of the sentinel errors above
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%v : %s", e.Err, e.Name)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// TypeError is returned when a typed accessor is used on an option of a
// different kind.
type TypeError struct {
	Name string
	Have Kind
	Want Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%v: option %s is %s, not %s", ErrWrongType, e.Name, e.Have, e.Want)
}

func (e *TypeError) Unwrap() error {
	return ErrWrongType
}

// ValueError is returned when the stored text of an option cannot be parsed
// as its kind. Err holds the strconv error, or ErrNoValue for unset options.
type ValueError struct {
	Name  string
	Kind  Kind
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	if errors.Is(e.Err, ErrNoValue) {
		return fmt.Sprintf("option %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("option %s: invalid %s value %q", e.Name, e.Kind, e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
