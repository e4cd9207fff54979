// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to talk to seed hosts.
//
// [SeedAdapter] decouples the seed probe service from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPSeedAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/gridcheck/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/seed_adapter_mock.go -package=mock

// SeedAdapter fetches the status of a seed host.
type SeedAdapter interface {
	// Probe requests GET <seed>/api/health/ and decodes the returned
	// [models.NodeStatus]. seed is a base URL; a missing scheme defaults to
	// http. Returns an error if the seed cannot be reached, answers with a
	// non-2xx status or sends a body that cannot be decoded.
	Probe(ctx context.Context, seed string) (models.NodeStatus, error)
}
