// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/models"
)

// DefaultProbeTimeout bounds a single seed probe.
const DefaultProbeTimeout = 5 * time.Second

const healthPath = "/api/health/"

type httpSeedAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPSeedAdapter constructs an HTTP/REST implementation of [SeedAdapter].
// A non-positive timeout falls back to [DefaultProbeTimeout].
func NewHTTPSeedAdapter(timeout time.Duration, logger *logger.Logger) SeedAdapter {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpSeedAdapter{client: client, logger: logger}
}

// Probe implements [SeedAdapter].
func (h *httpSeedAdapter) Probe(ctx context.Context, seed string) (models.NodeStatus, error) {
	baseURL, err := normalizeBaseURL(seed)
	if err != nil {
		return models.NodeStatus{}, fmt.Errorf("%w %q: %w", ErrInvalidSeedAddress, seed, err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(baseURL + healthPath)
	if err != nil {
		return models.NodeStatus{}, fmt.Errorf("%w: %s: %w", ErrSeedUnreachable, baseURL, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NodeStatus{}, err
	}

	var status models.NodeStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.NodeStatus{}, fmt.Errorf("%w: decode health response: %w", ErrBadResponse, err)
	}

	h.logger.Debug().Str("seed", baseURL).Str("hostname", status.Hostname).Msg("seed answered")
	return status, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
