// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP surface of a gridcheck node.
//
// It wires the read-only node endpoints (health, version, resolved settings
// and the latest seed probes) behind request tracing, access logging and
// panic recovery, and delegates to the service layer.
package http
