// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/gridcheck/internal/handler/http"
	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) (*Handlers, error) {
	if services == nil {
		return nil, errNoServices
	}

	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
