// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver merges environment-supplied option values into a
// command-line token sequence and parses the result.
//
// Resolution is a single linear pass run once at process start:
//
//  1. The Environment Key map of the registry is built; a collision is a
//     structural error returned by [New].
//  2. [Resolver.Merge] groups relevant environment entries by option,
//     discards every group whose option already appears on the command line
//     (recording a [Warning]), rejects groups whose keys disagree, and appends
//     the remaining values to the command line as alias/value tokens.
//  3. [Resolver.Parse] runs standard option parsing over the merged tokens.
//
// The command line always wins over the environment. Unrelated environment
// variables are ignored. Neither input is modified.
package resolver
