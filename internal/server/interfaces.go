// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the node's transport server.
type Server interface {
	// RunServer binds the listen address and serves until ctx is cancelled,
	// then shuts down gracefully. A bind failure or a Serve failure other
	// than a graceful shutdown is returned.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()

	// Addr returns the bound address once RunServer has started listening.
	Addr() string
}
