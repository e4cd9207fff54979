// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import (
	"strings"
)

// EnvKey derives the Environment Key of alias under prefix: the leading and
// trailing dashes are stripped, the name is upper-cased, the remaining dashes
// become underscores and prefix is prepended.
//
//	EnvKey("--local-ip", "GRIDCHECK_") == "GRIDCHECK_LOCAL_IP"
func EnvKey(alias, prefix string) string {
	name := strings.ToUpper(trimDashes(alias))
	return prefix + strings.ReplaceAll(name, "-", "_")
}

// Namespaceable reports whether alias gets an Environment Key. Single
// character aliases are command-line shortcuts only.
func Namespaceable(alias string) bool {
	return len(trimDashes(alias)) > 1
}

// EnvironmentMap is the bidirectional mapping between Environment Keys and
// options of a [Registry].
type EnvironmentMap struct {
	prefix    string
	keyToOpt  map[string]*Option
	optToKeys map[string][]string
}

// BuildEnvironmentMap derives the Environment Keys of every namespaceable
// alias in reg. It fails with a [*DuplicateMappingError] when two distinct
// options derive the same key, whatever their declaration order.
func BuildEnvironmentMap(reg *Registry, prefix string) (*EnvironmentMap, error) {
	m := &EnvironmentMap{
		prefix:    prefix,
		keyToOpt:  make(map[string]*Option),
		optToKeys: make(map[string][]string),
	}

	for i := range reg.options {
		opt := &reg.options[i]
		for _, alias := range opt.Aliases {
			if !Namespaceable(alias) {
				continue
			}

			key := EnvKey(alias, prefix)
			if owner, ok := m.keyToOpt[key]; ok {
				if owner == opt {
					continue
				}
				return nil, &DuplicateMappingError{
					EnvKey:  key,
					Aliases: [2]string{owner.Primary(), opt.Primary()},
				}
			}

			m.keyToOpt[key] = opt
			m.optToKeys[opt.Primary()] = append(m.optToKeys[opt.Primary()], key)
		}
	}

	return m, nil
}

// Prefix returns the namespace prefix the map was built with.
func (m *EnvironmentMap) Prefix() string {
	return m.prefix
}

// Option returns the option an Environment Key maps to.
func (m *EnvironmentMap) Option(key string) (*Option, bool) {
	opt, ok := m.keyToOpt[key]
	return opt, ok
}

// Keys returns the Environment Keys derived for the option whose primary
// alias is primary, in alias declaration order.
func (m *EnvironmentMap) Keys(primary string) []string {
	return append([]string(nil), m.optToKeys[primary]...)
}

// Len returns the number of Environment Keys in the map.
func (m *EnvironmentMap) Len() int {
	return len(m.keyToOpt)
}
