// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package options declares the command-line options a process accepts and
// derives the environment variable names that may supply them.
//
// An [Option] is identified by its aliases; the first alias is the primary
// one and is used as the canonical key when values from several sources are
// merged. Every alias whose name is longer than one character is mapped to an
// Environment Key such as GRIDCHECK_LOCAL_IP by [EnvKey]; the resulting
// mapping is built and checked for collisions by [BuildEnvironmentMap].
//
// Declarations are validated once by [NewRegistry]. Errors returned from this
// package are structural: they point at a bug in the declarations rather than
// at operator input, and callers are expected to abort startup on them.
package options
