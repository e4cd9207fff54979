// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"maps"

	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/internal/resolver"
)

type configBuilder struct {
	logger  *logger.Logger
	args    []string
	environ map[string]string
}

func newConfigBuilder(log *logger.Logger) *configBuilder {
	if log == nil {
		log = logger.Nop()
	}

	return &configBuilder{
		logger:  log,
		environ: make(map[string]string),
	}
}

func (b *configBuilder) build() (*Resolution, error) {
	registry, err := Registry()
	if err != nil {
		return nil, fmt.Errorf("error declaring options: %w", err)
	}

	r, err := resolver.New(registry, EnvPrefix, b.logger)
	if err != nil {
		return nil, err
	}

	res, err := r.Resolve(b.args, b.environ)
	if err != nil {
		return nil, err
	}

	settings, err := settingsFromValues(res.Values)
	if err != nil {
		return nil, err
	}

	if err = settings.validate(); err != nil {
		return nil, err
	}

	return &Resolution{
		Settings: settings,
		Warnings: res.Merged.Warnings,
		Args:     res.Merged.Args,
	}, nil
}

func (b *configBuilder) withArgs(args []string) *configBuilder {
	b.args = append([]string(nil), args...)
	return b
}

func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	maps.Copy(b.environ, environ)
	return b
}
