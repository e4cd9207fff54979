// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOption is returned by [NewRegistry] when a declaration is
	// malformed (no aliases, bad alias spelling, unparsable default, etc.).
	ErrInvalidOption = errors.New("invalid option declaration")

	// ErrDuplicateAlias is returned by [NewRegistry] when two options declare
	// the same alias.
	ErrDuplicateAlias = errors.New("duplicate option alias")

	// ErrDuplicateMapping is returned by [BuildEnvironmentMap] when two
	// distinct options derive the same Environment Key.
	ErrDuplicateMapping = errors.New("duplicate environment key mapping")
)

// DuplicateMappingError describes an Environment Key claimed by two options.
type DuplicateMappingError struct {
	// EnvKey is the colliding environment variable name.
	EnvKey string
	// Aliases are the primary aliases of the two options, in declaration
	// order.
	Aliases [2]string
}

func (e *DuplicateMappingError) Error() string {
	return fmt.Sprintf("application error: duplicate environment settings name %s (options %s)",
		e.EnvKey, strings.Join(e.Aliases[:], ", "))
}

// Is reports whether target is [ErrDuplicateMapping].
func (e *DuplicateMappingError) Is(target error) bool {
	return target == ErrDuplicateMapping
}

func invalidOption(alias, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidOption, alias, fmt.Sprintf(format, args...))
}
