// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"

	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/internal/resolver"
)

// Settings is the resolved configuration of a gridcheck process. It is
// produced once by [Resolve] and never modified afterwards.
//
// Struct tags:
//   - json: field names used when the settings are printed in check mode
//     and served by the settings endpoint.
type Settings struct {
	// SeedHosts are the base URLs of the gridcheck nodes this process should
	// join.
	// Flag: --seed-host / -s (repeatable). Env: GRIDCHECK_SEED_HOST
	SeedHosts []string `json:"seed_host"`

	// AddressSourceMethod selects how the local and routable addresses are
	// determined.
	// Flag: --address-source-method / -M. Env: GRIDCHECK_ADDRESS_SOURCE_METHOD
	AddressSourceMethod string `json:"address_source_method"`

	// LogTCPJSON is the optional host:port of a server accepting TCP JSON
	// Lines log events.
	// Flag: --log-tcp-json / -J. Env: GRIDCHECK_LOG_TCP_JSON
	LogTCPJSON string `json:"log_tcp_json"`

	// LocalIP, LocalPort and LocalHostname describe the address the service
	// listens on.
	LocalIP       string `json:"local_ip"`
	LocalPort     int    `json:"local_port"`
	LocalHostname string `json:"local_hostname"`

	// RoutableIP, RoutablePort and RoutableHostname describe the address
	// other nodes use to reach this one.
	RoutableIP       string `json:"routable_ip"`
	RoutablePort     string `json:"routable_port"`
	RoutableHostname string `json:"routable_hostname"`

	// CheckConfig requests a dry run: print the settings and exit.
	// Flag: --check-config. Env: GRIDCHECK_CHECK_CONFIG
	CheckConfig bool `json:"check_config"`
}

// LocalAddress returns the host:port the service listens on.
func (s *Settings) LocalAddress() string {
	return net.JoinHostPort(s.LocalIP, strconv.Itoa(s.LocalPort))
}

// RoutableAddress returns the host:port other nodes use to reach this one.
func (s *Settings) RoutableAddress() string {
	return net.JoinHostPort(s.RoutableIP, s.RoutablePort)
}

// Resolution is the outcome of [Resolve].
type Resolution struct {
	// Settings is the validated configuration.
	Settings *Settings

	// Warnings lists the environment variables that were discarded because
	// the command line set the same option.
	Warnings []resolver.Warning

	// Args is the merged token sequence that was parsed.
	Args []string
}

// Resolve merges environ into args, parses the result against the gridcheck
// options and validates the addressing fields. args excludes the program
// name. Discard warnings are logged to log and returned in the Resolution.
//
// Returns an error if the option declarations are inconsistent, if two
// environment variables disagree, if parsing fails, or if validation fails.
func Resolve(args []string, environ map[string]string, log *logger.Logger) (*Resolution, error) {
	return newConfigBuilder(log).
		withArgs(args).
		withEnv(environ).
		build()
}
