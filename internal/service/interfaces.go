// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/gridcheck/internal/config"
	"github.com/MKhiriev/gridcheck/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NodeService describes the running node from its resolved settings.
type NodeService interface {
	// Status returns the self-description served on /api/health/.
	Status(ctx context.Context) models.NodeStatus

	// Settings returns a copy of the resolved settings.
	Settings(ctx context.Context) config.Settings
}

// SeedService probes the configured seed hosts and remembers the latest
// outcome per seed.
type SeedService interface {
	// ProbeAll probes every seed once, concurrently, and returns the results
	// in seed declaration order.
	ProbeAll(ctx context.Context) []models.SeedProbe

	// LastProbes returns the results of the most recent ProbeAll, or nil
	// before the first run.
	LastProbes(ctx context.Context) []models.SeedProbe
}
