// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the settings of a gridcheck process.
//
// Settings come from two sources: the command line and environment
// variables named after the options under the GRIDCHECK_ prefix (for example
// --local-ip and GRIDCHECK_LOCAL_IP). The command line always wins; an
// environment variable shadowed by it is discarded with a warning.
//
// After parsing, the address source method must be one of
// [AddressSourceMethods] and the local and routable addresses must be fully
// determined; all missing fields are reported together.
//
// The main entry point is [Resolve]; [EnvironSnapshot] captures the process
// environment for it.
package config
