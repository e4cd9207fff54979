// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/internal/service"
)

// DefaultProbeInterval is used when a non-positive interval is given.
const DefaultProbeInterval = 30 * time.Second

// SeedProbeWorker probes the seed hosts once at start and then on every tick.
type SeedProbeWorker struct {
	seeds    service.SeedService
	interval time.Duration

	logger *logger.Logger
}

func NewSeedProbeWorker(seeds service.SeedService, interval time.Duration, logger *logger.Logger) *SeedProbeWorker {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &SeedProbeWorker{seeds: seeds, interval: interval, logger: logger}
}

func (w *SeedProbeWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("seed probe worker started")
	defer w.logger.Info().Msg("seed probe worker stopped")

	w.probe(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.probe(ctx)
		}
	}
}

func (w *SeedProbeWorker) probe(ctx context.Context) {
	probes := w.seeds.ProbeAll(ctx)

	healthy := 0
	for _, p := range probes {
		if p.Healthy() {
			healthy++
		}
	}

	event := w.logger.Info()
	if healthy == 0 {
		event = w.logger.Warn()
	}
	event.Int("healthy", healthy).Int("total", len(probes)).Msg("seed probe round finished")
}
