// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/gridcheck/internal/adapter"
	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/models"
)

type seedService struct {
	adapter adapter.SeedAdapter
	seeds   []string

	mu   sync.RWMutex
	last []models.SeedProbe

	now    func() time.Time
	logger *logger.Logger
}

func NewSeedService(seedAdapter adapter.SeedAdapter, seeds []string, logger *logger.Logger) (SeedService, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeedHosts
	}

	return &seedService{
		adapter: seedAdapter,
		seeds:   slices.Clone(seeds),
		now:     time.Now,
		logger:  logger,
	}, nil
}

func (s *seedService) ProbeAll(ctx context.Context) []models.SeedProbe {
	results := make([]models.SeedProbe, len(s.seeds))

	var wg sync.WaitGroup
	for i, seed := range s.seeds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.probe(ctx, seed)
		}()
	}
	wg.Wait()

	s.mu.Lock()
	s.last = results
	s.mu.Unlock()

	return slices.Clone(results)
}

func (s *seedService) LastProbes(ctx context.Context) []models.SeedProbe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.last)
}

func (s *seedService) probe(ctx context.Context, seed string) models.SeedProbe {
	start := s.now()
	result := models.SeedProbe{Seed: seed, CheckedAt: start}

	status, err := s.adapter.Probe(ctx, seed)
	result.Latency = s.now().Sub(start)
	if err != nil {
		result.Err = err.Error()
		s.logger.Warn().Err(err).Str("seed", seed).Msg("seed probe failed")
		return result
	}

	result.Status = &status
	s.logger.Info().
		Str("seed", seed).
		Str("seed_hostname", status.Hostname).
		Str("seed_version", status.Version).
		Dur("latency", result.Latency).
		Msg("seed is healthy")
	return result
}
