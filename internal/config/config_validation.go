// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"maps"
	"slices"
)

// AddressSourceSettings takes every address from the resolved options as-is.
const AddressSourceSettings = "settings"

// addressSources maps each recognized address source method to the function
// that fills in the addressing fields. "settings" expects them to be filled
// in already.
var addressSources = map[string]func(*Settings) error{
	AddressSourceSettings: func(*Settings) error { return nil },
}

// AddressSourceMethods returns the recognized address source methods, sorted.
func AddressSourceMethods() []string {
	return slices.Sorted(maps.Keys(addressSources))
}

// validate checks that the final [Settings] may be used to start the
// service.
//
// The address source method is checked first and fails immediately. The six
// addressing fields are then checked together; every missing one is listed
// in a single [*MissingFieldsError].
func (s *Settings) validate() error {
	source, ok := addressSources[s.AddressSourceMethod]
	if !ok {
		return &UnknownAddressSourceError{
			Method:  s.AddressSourceMethod,
			Allowed: AddressSourceMethods(),
		}
	}

	if err := source(s); err != nil {
		return err
	}

	var missing []string
	for _, f := range s.addressFields() {
		if !f.set {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	return nil
}

type addressField struct {
	name string
	set  bool
}

func (s *Settings) addressFields() []addressField {
	return []addressField{
		{name: "local_ip", set: s.LocalIP != ""},
		{name: "local_hostname", set: s.LocalHostname != ""},
		{name: "local_port", set: s.LocalPort != 0},
		{name: "routable_ip", set: s.RoutableIP != ""},
		{name: "routable_hostname", set: s.RoutableHostname != ""},
		{name: "routable_port", set: s.RoutablePort != ""},
	}
}
