// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the node's HTTP server: it binds the local address,
// serves until its context is cancelled and then shuts down gracefully.
package server
