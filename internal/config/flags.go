// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/gridcheck/internal/resolver"
)

// settingsFromValues copies parsed option values into a [Settings].
func settingsFromValues(v *resolver.Values) (*Settings, error) {
	var errs []error
	str := func(alias string) string {
		s, err := v.String(alias)
		errs = append(errs, err)
		return s
	}
	num := func(alias string) int {
		n, err := v.Int(alias)
		errs = append(errs, err)
		return n
	}

	seedHosts, err := v.Strings(optSeedHost)
	errs = append(errs, err)
	checkConfig, err := v.Bool(optCheckConfig)
	errs = append(errs, err)

	settings := &Settings{
		SeedHosts:           seedHosts,
		AddressSourceMethod: str(optAddressSourceMethod),
		LogTCPJSON:          str(optLogTCPJSON),
		LocalIP:             str(optLocalIP),
		LocalPort:           num(optLocalPort),
		LocalHostname:       str(optLocalHostname),
		RoutableIP:          str(optRoutableIP),
		RoutablePort:        str(optRoutablePort),
		RoutableHostname:    str(optRoutableHostname),
		CheckConfig:         checkConfig,
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading parsed options: %w", err)
	}

	return settings, nil
}
