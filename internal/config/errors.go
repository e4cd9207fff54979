// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors returned by [Resolve] when the resolved settings cannot
// be used to start the service.
var (
	// ErrUnknownAddressSource indicates an address source method outside
	// [AddressSourceMethods].
	ErrUnknownAddressSource = errors.New("unknown address source method")
	// ErrIncompleteAddressing indicates that one or more addressing fields
	// are empty after resolution.
	ErrIncompleteAddressing = errors.New("incomplete addressing configuration")
)

// UnknownAddressSourceError names the rejected method and the allowed set.
type UnknownAddressSourceError struct {
	Method  string
	Allowed []string
}

func (e *UnknownAddressSourceError) Error() string {
	return fmt.Sprintf("address source method cannot be `%s`, must be one of %s",
		e.Method, strings.Join(e.Allowed, "|"))
}

// Is reports whether target is [ErrUnknownAddressSource].
func (e *UnknownAddressSourceError) Is(target error) bool {
	return target == ErrUnknownAddressSource
}

// MissingFieldsError lists every addressing field left empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	lines := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		lines[i] = "could not determine " + f
	}

	return strings.Join(lines, "\n")
}

// Is reports whether target is [ErrIncompleteAddressing].
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrIncompleteAddressing
}
