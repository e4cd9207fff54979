// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/gridcheck/internal/options"
)

// ErrUnknownAlias is returned by the [Values] getters for an alias the
// registry does not declare.
var ErrUnknownAlias = errors.New("unknown option alias")

// Values gives typed access to parsed option values by alias.
type Values struct {
	registry *options.Registry
	fs       *pflag.FlagSet
}

// Parse runs standard option parsing over tokens. Unknown options, malformed
// values, positional arguments and missing required options fail with a
// [*ParseError]; -h/--help fails with a ParseError wrapping [pflag.ErrHelp].
func (r *Resolver) Parse(tokens []string) (*Values, error) {
	if err := r.checkOptionValues(tokens); err != nil {
		return nil, &ParseError{Err: err}
	}

	fs := r.registry.FlagSet("gridcheck")
	fs.SetOutput(io.Discard)

	if err := fs.Parse(tokens); err != nil {
		return nil, &ParseError{Err: err}
	}

	if fs.NArg() > 0 {
		return nil, &ParseError{Err: fmt.Errorf("unrecognized arguments: %s", strings.Join(fs.Args(), " "))}
	}

	values := &Values{registry: r.registry, fs: fs}

	var missing []string
	for _, opt := range r.registry.Options() {
		if opt.Required && !values.Changed(opt.Primary()) {
			missing = append(missing, strings.Join(opt.Aliases, "/"))
		}
	}
	if len(missing) > 0 {
		return nil, &ParseError{Err: fmt.Errorf("the following arguments are required: %s", strings.Join(missing, ", "))}
	}

	return values, nil
}

// checkOptionValues rejects a value-taking option whose separate value token
// looks like an option itself, as in "--routable-hostname --check-config=true".
// pflag would take such a token as the value.
func (r *Resolver) checkOptionValues(tokens []string) error {
	for i, tok := range tokens {
		if tok == "--" {
			return nil
		}

		opt, ok := r.registry.Lookup(tok)
		if !ok || opt.Kind == options.KindBool {
			continue
		}
		if i+1 < len(tokens) && looksLikeOption(tokens[i+1]) {
			return fmt.Errorf("argument %s: expected one argument", strings.Join(opt.Aliases, "/"))
		}
	}

	return nil
}

// looksLikeOption reports whether tok starts with a dash and is neither a
// lone "-" nor a negative number.
func looksLikeOption(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err != nil
}

// Usage returns the option help text of the registry.
func (r *Resolver) Usage() string {
	return r.registry.FlagSet("gridcheck").FlagUsages()
}

// Changed reports whether any alias of the option declaring alias was set by
// the parsed tokens.
func (v *Values) Changed(alias string) bool {
	opt, ok := v.registry.Lookup(alias)
	if !ok {
		return false
	}

	for _, a := range opt.Aliases {
		if strings.HasPrefix(a, "--") && v.fs.Changed(a[2:]) {
			return true
		}
	}

	return false
}

// String returns the value of a single-valued string option.
func (v *Values) String(alias string) (string, error) {
	name, err := v.flagName(alias)
	if err != nil {
		return "", err
	}

	return v.fs.GetString(name)
}

// Strings returns the values of a repeatable string option.
func (v *Values) Strings(alias string) ([]string, error) {
	name, err := v.flagName(alias)
	if err != nil {
		return nil, err
	}

	return v.fs.GetStringArray(name)
}

// Int returns the value of an int option.
func (v *Values) Int(alias string) (int, error) {
	name, err := v.flagName(alias)
	if err != nil {
		return 0, err
	}

	return v.fs.GetInt(name)
}

// Bool returns the value of a bool option.
func (v *Values) Bool(alias string) (bool, error) {
	name, err := v.flagName(alias)
	if err != nil {
		return false, err
	}

	return v.fs.GetBool(name)
}

func (v *Values) flagName(alias string) (string, error) {
	name, ok := v.registry.FlagName(alias)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownAlias, alias)
	}

	return name, nil
}
