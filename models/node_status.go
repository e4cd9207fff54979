// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NodeStatus is the self-description a gridcheck node serves on
// /api/health/ and reads back from its seeds.
type NodeStatus struct {
	// Hostname is the node's local hostname.
	Hostname string `json:"hostname"`

	// RoutableIP, RoutableHostname and RoutablePort describe how other
	// nodes reach this one.
	RoutableIP       string `json:"routable_ip"`
	RoutableHostname string `json:"routable_hostname"`
	RoutablePort     string `json:"routable_port"`

	// Version is the build version of the reporting node.
	Version string `json:"version"`
}

// SeedProbe is the outcome of a single health probe against a seed host.
type SeedProbe struct {
	Seed      string        `json:"seed"`
	Status    *NodeStatus   `json:"status,omitempty"`
	Err       string        `json:"error,omitempty"`
	Latency   time.Duration `json:"latency"`
	CheckedAt time.Time     `json:"checked_at"`
}

// Healthy reports whether the seed answered with a status.
func (p SeedProbe) Healthy() bool {
	return p.Err == "" && p.Status != nil
}
