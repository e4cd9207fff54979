// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/api/health/", h.getHealth)
	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/settings/", h.getSettings)
	router.Get("/api/seeds/", h.getSeeds)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
