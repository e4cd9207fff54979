// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/gridcheck/internal/adapter"
	"github.com/MKhiriev/gridcheck/internal/config"
	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/models"
)

type Services struct {
	AppInfoService AppInfoService
	NodeService    NodeService
	SeedService    SeedService
}

func NewServices(settings *config.Settings, buildInfo models.AppBuildInfo, seedAdapter adapter.SeedAdapter, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	node, err := NewNodeService(settings, buildInfo.BuildVersion(), logger)
	if err != nil {
		return nil, fmt.Errorf("error creating node service: %w", err)
	}

	seeds, err := NewSeedService(seedAdapter, settings.SeedHosts, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating seed service: %w", err)
	}

	return &Services{
		AppInfoService: appInfo,
		NodeService:    node,
		SeedService:    seeds,
	}, nil
}
