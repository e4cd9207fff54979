// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the HTTP layer and the
// entry point: JSON response writing and request id generation.
package utils
