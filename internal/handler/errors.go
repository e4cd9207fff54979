// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServices is returned by NewHandlers when it is given no services to
// serve. It is a wiring bug and fails startup.
var errNoServices = errors.New("no services to build handlers from")
