// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoSettings            = errors.New("no resolved settings provided")
	ErrNoSeedHosts           = errors.New("no seed hosts configured")
)
