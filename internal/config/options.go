// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/gridcheck/internal/options"
)

// EnvPrefix namespaces every Environment Key derived from a gridcheck option.
const EnvPrefix = "GRIDCHECK_"

// Option aliases, used as keys when reading parsed values.
const (
	optSeedHost            = "--seed-host"
	optAddressSourceMethod = "--address-source-method"
	optLogTCPJSON          = "--log-tcp-json"
	optLocalIP             = "--local-ip"
	optLocalPort           = "--local-port"
	optLocalHostname       = "--local-hostname"
	optRoutableIP          = "--routable-ip"
	optRoutablePort        = "--routable-port"
	optRoutableHostname    = "--routable-hostname"
	optCheckConfig         = "--check-config"
)

// Registry returns the options a gridcheck process accepts.
//
// The addressing options are not marked required: their presence is checked
// after parsing so that every missing one is reported at once.
func Registry() (*options.Registry, error) {
	return options.NewRegistry(
		options.Option{
			Aliases:  []string{optSeedHost, "-s"},
			Required: true,
			Multiple: true,
			Help:     "A list of gridcheck base URLs that this process should join.",
		},
		options.Option{
			Aliases: []string{optAddressSourceMethod, "-M"},
			Default: AddressSourceSettings,
			Help:    "The method gridcheck will use to determine how to publicize this host address.",
		},
		options.Option{
			Aliases: []string{optLogTCPJSON, "-J"},
			Help:    "Host:port for server accepting TCP JSON Lines.",
		},
		options.Option{Aliases: []string{optLocalIP}, Default: "127.0.0.1"},
		options.Option{Aliases: []string{optLocalPort}, Kind: options.KindInt, Default: "1180"},
		options.Option{Aliases: []string{optLocalHostname}, Default: "localhost"},
		options.Option{Aliases: []string{optRoutableIP}},
		options.Option{Aliases: []string{optRoutablePort}},
		options.Option{Aliases: []string{optRoutableHostname}},
		options.Option{
			Aliases: []string{optCheckConfig},
			Kind:    options.KindBool,
			Default: "false",
			Help:    "Don't start a server, just check and print settings.",
		},
	)
}

// Usage returns the help text listing every option, or an empty string if
// the declarations are inconsistent.
func Usage() string {
	registry, err := Registry()
	if err != nil {
		return ""
	}
	return registry.FlagSet("gridcheck").FlagUsages()
}
