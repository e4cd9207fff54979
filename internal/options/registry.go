// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import (
	"fmt"
	"strconv"
	"strings"
)

// Registry is a validated, immutable list of options.
type Registry struct {
	options []Option
	byAlias map[string]int
}

// NewRegistry validates the declarations and returns a registry holding
// copies of them. The primary alias of every option must be a long
// ("--name") alias; pflag requires a long name for every flag.
func NewRegistry(opts ...Option) (*Registry, error) {
	reg := &Registry{
		options: make([]Option, 0, len(opts)),
		byAlias: make(map[string]int),
	}

	for i, opt := range opts {
		if err := validateOption(opt); err != nil {
			return nil, err
		}

		for _, alias := range opt.Aliases {
			if prev, ok := reg.byAlias[alias]; ok {
				return nil, fmt.Errorf("%w: %s declared by %s and %s",
					ErrDuplicateAlias, alias, reg.options[prev].Primary(), opt.Primary())
			}
			reg.byAlias[alias] = i
		}

		opt.Aliases = append([]string(nil), opt.Aliases...)
		reg.options = append(reg.options, opt)
	}

	return reg, nil
}

// Options returns the declared options in declaration order.
func (r *Registry) Options() []Option {
	return append([]Option(nil), r.options...)
}

// Lookup returns the option declaring alias.
func (r *Registry) Lookup(alias string) (*Option, bool) {
	i, ok := r.byAlias[alias]
	if !ok {
		return nil, false
	}

	return &r.options[i], true
}

func validateOption(opt Option) error {
	if len(opt.Aliases) == 0 {
		return fmt.Errorf("%w: option without aliases", ErrInvalidOption)
	}

	primary := opt.Aliases[0]
	if !isLong(primary) {
		return invalidOption(primary, "primary alias must have the form --name")
	}

	shorts := 0
	for _, alias := range opt.Aliases {
		switch {
		case isShort(alias):
			shorts++
		case isLong(alias):
		default:
			return invalidOption(alias, "alias must have the form --name or -x")
		}
		if strings.ContainsAny(alias, "= \t") {
			return invalidOption(alias, "alias contains a separator character")
		}
	}
	if shorts > 1 {
		return invalidOption(primary, "more than one single-character alias")
	}

	switch opt.Kind {
	case KindString:
	case KindInt:
		if opt.Default != "" {
			if _, err := strconv.Atoi(opt.Default); err != nil {
				return invalidOption(primary, "default %q is not an int", opt.Default)
			}
		}
	case KindBool:
		if opt.Required || opt.Multiple {
			return invalidOption(primary, "bool options cannot be required or repeatable")
		}
		if opt.Default != "" {
			if _, err := strconv.ParseBool(opt.Default); err != nil {
				return invalidOption(primary, "default %q is not a bool", opt.Default)
			}
		}
	default:
		return invalidOption(primary, "unknown kind %d", opt.Kind)
	}

	if opt.Multiple && opt.Kind != KindString {
		return invalidOption(primary, "only string options can be repeatable")
	}

	return nil
}
