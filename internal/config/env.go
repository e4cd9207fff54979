// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvironSnapshot returns the process environment as a map using the
// caarlos0/env library, which also skips the "=C:" style pseudo variables
// found on Windows. The snapshot is a private copy; the process environment
// is never modified through it.
func EnvironSnapshot() map[string]string {
	return env.ToMap(os.Environ())
}
