// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/internal/options"
)

// Resolver merges an environment snapshot into a command line according to a
// fixed option registry.
type Resolver struct {
	registry *options.Registry
	envMap   *options.EnvironmentMap
	logger   *logger.Logger
}

// Override is an environment value that made it into the merged tokens.
type Override struct {
	Alias  string
	EnvKey string
	Value  string
	Kind   options.Kind
}

// Tokens returns the command-line spelling of the override. Bool options
// take the attached form because a bare bool flag does not consume the next
// token.
func (o Override) Tokens() []string {
	if o.Kind == options.KindBool {
		return []string{o.Alias + "=" + o.Value}
	}

	return []string{o.Alias, o.Value}
}

// Warning records an environment variable discarded in favour of the
// command line.
type Warning struct {
	EnvKey  string
	Aliases []string
}

func (w Warning) String() string {
	return fmt.Sprintf("discarding environment variable `%s` which conflicts with cli argument `%s`",
		w.EnvKey, strings.Join(w.Aliases, "|"))
}

// Merged is the outcome of [Resolver.Merge].
type Merged struct {
	// Args is the original command line with the overrides inserted.
	Args      []string
	Overrides []Override
	Warnings  []Warning
}

type envEntry struct {
	key   string
	value string
}

type envGroup struct {
	opt     *options.Option
	entries []envEntry
}

// New builds the Environment Key map of registry under prefix. Collisions are
// returned as [*options.DuplicateMappingError]. Discard warnings are written
// to log; a nil log discards them.
func New(registry *options.Registry, prefix string, log *logger.Logger) (*Resolver, error) {
	if log == nil {
		log = logger.Nop()
	}

	envMap, err := options.BuildEnvironmentMap(registry, prefix)
	if err != nil {
		return nil, fmt.Errorf("error building environment map: %w", err)
	}

	return &Resolver{
		registry: registry,
		envMap:   envMap,
		logger:   log,
	}, nil
}

// Registry returns the registry the resolver was built for.
func (r *Resolver) Registry() *options.Registry {
	return r.registry
}

// Merge appends environment-derived values to args. Overrides are placed
// before a "--" terminator when args contains one. Callers must not depend
// on the relative order of overrides for different options.
func (r *Resolver) Merge(args []string, environ map[string]string) (*Merged, error) {
	groups := r.collect(environ)

	overrides, warnings, err := r.decide(groups, args)
	if err != nil {
		return nil, err
	}

	for _, w := range warnings {
		r.logger.Warn().
			Str("env_key", w.EnvKey).
			Strs("aliases", w.Aliases).
			Msg(w.String())
	}

	return &Merged{
		Args:      flatten(args, overrides),
		Overrides: overrides,
		Warnings:  warnings,
	}, nil
}

// collect groups the relevant environment entries by option, in option
// declaration order; entries within a group are sorted by key.
func (r *Resolver) collect(environ map[string]string) []envGroup {
	byPrimary := make(map[string][]envEntry)
	for _, key := range slices.Sorted(maps.Keys(environ)) {
		opt, ok := r.envMap.Option(key)
		if !ok {
			continue
		}
		byPrimary[opt.Primary()] = append(byPrimary[opt.Primary()], envEntry{key: key, value: environ[key]})
	}

	groups := make([]envGroup, 0, len(byPrimary))
	for _, opt := range r.registry.Options() {
		entries, ok := byPrimary[opt.Primary()]
		if !ok {
			continue
		}
		groups = append(groups, envGroup{opt: &opt, entries: entries})
	}

	return groups
}

func (r *Resolver) decide(groups []envGroup, args []string) ([]Override, []Warning, error) {
	var overrides []Override
	var warnings []Warning

	for _, g := range groups {
		if present := g.opt.Present(args); len(present) > 0 {
			for _, e := range g.entries {
				warnings = append(warnings, Warning{EnvKey: e.key, Aliases: present})
			}
			continue
		}

		if err := checkAgreement(g); err != nil {
			return nil, nil, err
		}

		first := g.entries[0]
		overrides = append(overrides, Override{
			Alias:  g.opt.Primary(),
			EnvKey: first.key,
			Value:  first.value,
			Kind:   g.opt.Kind,
		})
	}

	return overrides, warnings, nil
}

// checkAgreement fails when the keys of one option carry different values.
// This needs an option with more than one long alias.
func checkAgreement(g envGroup) error {
	for _, e := range g.entries[1:] {
		if e.value == g.entries[0].value {
			continue
		}

		conflict := &ConflictingEnvironmentError{Alias: g.opt.Primary()}
		for _, e := range g.entries {
			conflict.EnvKeys = append(conflict.EnvKeys, e.key)
			conflict.Values = append(conflict.Values, e.value)
		}
		return conflict
	}

	return nil
}

func flatten(args []string, overrides []Override) []string {
	tokens := make([]string, 0, 2*len(overrides))
	for _, o := range overrides {
		tokens = append(tokens, o.Tokens()...)
	}

	cut := slices.Index(args, "--")
	if cut < 0 {
		cut = len(args)
	}

	merged := make([]string, 0, len(args)+len(tokens))
	merged = append(merged, args[:cut]...)
	merged = append(merged, tokens...)
	merged = append(merged, args[cut:]...)

	return merged
}

// Resolution is the outcome of [Resolver.Resolve].
type Resolution struct {
	Merged *Merged
	Values *Values
}

// Resolve merges environ into args and parses the result.
func (r *Resolver) Resolve(args []string, environ map[string]string) (*Resolution, error) {
	merged, err := r.Merge(args, environ)
	if err != nil {
		return nil, err
	}

	values, err := r.Parse(merged.Args)
	if err != nil {
		return nil, err
	}

	return &Resolution{Merged: merged, Values: values}, nil
}
