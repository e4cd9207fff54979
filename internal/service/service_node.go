// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/gridcheck/internal/config"
	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/models"
)

type nodeService struct {
	settings config.Settings
	version  string

	logger *logger.Logger
}

// NewNodeService snapshots settings; later changes to the caller's value are
// not observed.
func NewNodeService(settings *config.Settings, version string, logger *logger.Logger) (NodeService, error) {
	if settings == nil {
		return nil, ErrNoSettings
	}

	snapshot := *settings
	snapshot.SeedHosts = slices.Clone(settings.SeedHosts)

	return &nodeService{
		settings: snapshot,
		version:  version,
		logger:   logger,
	}, nil
}

func (s *nodeService) Status(ctx context.Context) models.NodeStatus {
	return models.NodeStatus{
		Hostname:         s.settings.LocalHostname,
		RoutableIP:       s.settings.RoutableIP,
		RoutableHostname: s.settings.RoutableHostname,
		RoutablePort:     s.settings.RoutablePort,
		Version:          s.version,
	}
}

func (s *nodeService) Settings(ctx context.Context) config.Settings {
	out := s.settings
	out.SeedHosts = slices.Clone(s.settings.SeedHosts)
	return out
}
