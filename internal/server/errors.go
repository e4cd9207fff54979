// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandlers = errors.New("no http handler to serve")
	errNoSettings = errors.New("no settings to take the listen address from")
)
