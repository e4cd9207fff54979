// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidSeedAddress = errors.New("invalid seed address")
	ErrSeedUnreachable    = errors.New("seed unreachable")
	ErrNotFound           = errors.New("not found")
	ErrSeedUnhealthy      = errors.New("seed unhealthy")
	ErrBadResponse        = errors.New("bad seed response")
)
