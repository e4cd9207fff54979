// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConflictingEnvironment is returned by [Resolver.Merge] when two
	// Environment Keys of the same option carry different values.
	ErrConflictingEnvironment = errors.New("conflicting environment keys")

	// ErrParse is returned by [Resolver.Parse] when the merged token
	// sequence is rejected.
	ErrParse = errors.New("argument error")
)

// ConflictingEnvironmentError names the option and the Environment Keys that
// disagree about its value.
type ConflictingEnvironmentError struct {
	Alias   string
	EnvKeys []string
	Values  []string
}

func (e *ConflictingEnvironmentError) Error() string {
	pairs := make([]string, len(e.EnvKeys))
	for i := range e.EnvKeys {
		pairs[i] = fmt.Sprintf("%s=%q", e.EnvKeys[i], e.Values[i])
	}

	return fmt.Sprintf("conflicting environment keys for %s: %s", e.Alias, strings.Join(pairs, ", "))
}

// Is reports whether target is [ErrConflictingEnvironment].
func (e *ConflictingEnvironmentError) Is(target error) bool {
	return target == ErrConflictingEnvironment
}

// ParseError wraps a failure of standard option parsing.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "argument error: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrParse].
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
