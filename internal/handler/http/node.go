// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/internal/utils"
	"github.com/MKhiriev/gridcheck/models"
)

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	status := h.services.NodeService.Status(r.Context())
	h.writeJSON(w, r, status, "*Handler.getHealth")
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.services.NodeService.Settings(r.Context())
	h.writeJSON(w, r, settings, "*Handler.getSettings")
}

func (h *Handler) getSeeds(w http.ResponseWriter, r *http.Request) {
	probes := h.services.SeedService.LastProbes(r.Context())
	if probes == nil {
		probes = []models.SeedProbe{}
	}
	h.writeJSON(w, r, probes, "*Handler.getSeeds")
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, fn string) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("error writing response")
	}
}
