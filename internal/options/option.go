// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import (
	"strings"
)

// Kind is the value type of an option.
type Kind int

const (
	// KindString options take a free-form text value.
	KindString Kind = iota
	// KindInt options take a base-10 integer value.
	KindInt
	// KindBool options are flags; they take no value on the command line.
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Option is a single declared command-line option.
//
// Aliases are full spellings including dashes, e.g. "--seed-host" and "-s".
// The first alias is the primary alias.
type Option struct {
	Aliases  []string
	Kind     Kind
	Default  string
	Required bool
	Multiple bool
	Help     string
}

// Primary returns the first-declared alias.
func (o *Option) Primary() string {
	return o.Aliases[0]
}

// Dest returns the settings field name of the option, e.g. "local_ip" for
// "--local-ip".
func (o *Option) Dest() string {
	return strings.ReplaceAll(trimDashes(o.Primary()), "-", "_")
}

// Present returns the aliases of o that occur in args. Tokens after a "--"
// terminator are positional and are not inspected. Both the separate
// ("--local-ip 10.0.0.1", "-s host") and the attached ("--local-ip=10.0.0.1",
// "-shost") spellings are recognized.
func (o *Option) Present(args []string) []string {
	var found []string
	for _, alias := range o.Aliases {
		for _, arg := range args {
			if arg == "--" {
				break
			}
			if matchesAlias(arg, alias) {
				found = append(found, alias)
				break
			}
		}
	}

	return found
}

func matchesAlias(arg, alias string) bool {
	if arg == alias {
		return true
	}
	if isShort(alias) {
		return !strings.HasPrefix(arg, "--") && strings.HasPrefix(arg, alias)
	}

	return strings.HasPrefix(arg, alias+"=")
}

func (o *Option) shorthand() string {
	for _, alias := range o.Aliases {
		if isShort(alias) {
			return alias[1:]
		}
	}

	return ""
}

func (o *Option) longNames() []string {
	names := make([]string, 0, len(o.Aliases))
	for _, alias := range o.Aliases {
		if !isShort(alias) {
			names = append(names, alias[2:])
		}
	}

	return names
}

func isShort(alias string) bool {
	return len(alias) == 2 && alias[0] == '-' && alias[1] != '-'
}

func isLong(alias string) bool {
	return len(alias) > 2 && strings.HasPrefix(alias, "--") && alias[2] != '-'
}

func trimDashes(alias string) string {
	return strings.Trim(alias, "-")
}
