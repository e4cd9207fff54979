// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the node's workers from its services.
func NewWorkers(services *service.Services, probeInterval time.Duration, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSeedProbeWorker(services.SeedService, probeInterval, logger),
		},
	}
}

// Run starts every worker in its own goroutine and returns once all of them
// have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
