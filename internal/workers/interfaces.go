// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of a gridcheck node.
// It defines the Worker interface and a Workers aggregate that runs all
// workers until their context is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run is expected to block until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
