// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gridcheck/internal/logger"
	"github.com/MKhiriev/gridcheck/internal/options"
)

const testPrefix = "GRIDCHECK_"

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestRegistry(t *testing.T) *options.Registry {
	t.Helper()
	reg, err := options.NewRegistry(
		options.Option{Aliases: []string{"--seed-host", "-s"}, Required: true, Multiple: true},
		options.Option{Aliases: []string{"--address-source-method", "-M"}, Default: "settings"},
		options.Option{Aliases: []string{"--local-ip", "--local-addr"}, Default: "127.0.0.1"},
		options.Option{Aliases: []string{"--local-port"}, Kind: options.KindInt, Default: "1180"},
		options.Option{Aliases: []string{"--local-hostname"}, Default: "localhost"},
		options.Option{Aliases: []string{"--check-config"}, Kind: options.KindBool, Default: "false"},
	)
	require.NoError(t, err)
	return reg
}

func newTestResolver(t *testing.T, buf *bytes.Buffer) *Resolver {
	t.Helper()
	log := logger.Nop()
	if buf != nil {
		log = &logger.Logger{Logger: zerolog.New(buf)}
	}
	r, err := New(newTestRegistry(t), testPrefix, log)
	require.NoError(t, err)
	return r
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

// ── New ───────────────────────────────────────────────────────────────────────

func TestNew_DuplicateMapping(t *testing.T) {
	reg, err := options.NewRegistry(
		options.Option{Aliases: []string{"--local-ip"}},
		options.Option{Aliases: []string{"--local_ip"}},
	)
	require.NoError(t, err)

	r, err := New(reg, testPrefix, nil)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, options.ErrDuplicateMapping)
}

func TestNew_NilLogger(t *testing.T) {
	r, err := New(newTestRegistry(t), testPrefix, nil)
	require.NoError(t, err)

	_, err = r.Merge([]string{"--local-ip", "1.1.1.1"}, map[string]string{"GRIDCHECK_LOCAL_IP": "2.2.2.2"})
	assert.NoError(t, err)
}

// ── Merge ─────────────────────────────────────────────────────────────────────

func TestMerge_EnvironmentOnly(t *testing.T) {
	r := newTestResolver(t, nil)

	merged, err := r.Merge(
		[]string{"--seed-host", "a.example.com"},
		map[string]string{"GRIDCHECK_LOCAL_IP": "10.0.0.5"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"--seed-host", "a.example.com", "--local-ip", "10.0.0.5"}, merged.Args)
	assert.Equal(t, []Override{{Alias: "--local-ip", EnvKey: "GRIDCHECK_LOCAL_IP", Value: "10.0.0.5", Kind: options.KindString}}, merged.Overrides)
	assert.Empty(t, merged.Warnings)
}

func TestMerge_CommandLineWins(t *testing.T) {
	var buf bytes.Buffer
	r := newTestResolver(t, &buf)

	args := []string{"--local-ip", "192.168.1.1"}
	merged, err := r.Merge(args, map[string]string{"GRIDCHECK_LOCAL_IP": "10.0.0.5"})
	require.NoError(t, err)

	assert.Equal(t, []string{"--local-ip", "192.168.1.1"}, merged.Args)
	assert.Empty(t, merged.Overrides)
	require.Len(t, merged.Warnings, 1)
	assert.Equal(t, Warning{EnvKey: "GRIDCHECK_LOCAL_IP", Aliases: []string{"--local-ip"}}, merged.Warnings[0])
	assert.Equal(t,
		"discarding environment variable `GRIDCHECK_LOCAL_IP` which conflicts with cli argument `--local-ip`",
		merged.Warnings[0].String())

	entries := decodeLogLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "GRIDCHECK_LOCAL_IP", entries[0]["env_key"])
	assert.Contains(t, entries[0]["message"], "--local-ip")
}

func TestMerge_CommandLineWinsForEverySpelling(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantAliases []string
	}{
		{name: "short alias", args: []string{"-M", "other"}, wantAliases: []string{"-M"}},
		{name: "attached short alias", args: []string{"-Mother"}, wantAliases: []string{"-M"}},
		{name: "attached long alias", args: []string{"--address-source-method=other"}, wantAliases: []string{"--address-source-method"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(t, nil)

			merged, err := r.Merge(tt.args, map[string]string{"GRIDCHECK_ADDRESS_SOURCE_METHOD": "settings"})
			require.NoError(t, err)

			assert.Equal(t, tt.args, merged.Args)
			require.Len(t, merged.Warnings, 1)
			assert.Equal(t, tt.wantAliases, merged.Warnings[0].Aliases)
		})
	}
}

func TestMerge_IgnoresIrrelevantEnvironment(t *testing.T) {
	r := newTestResolver(t, nil)
	args := []string{"--seed-host", "a"}

	merged, err := r.Merge(args, map[string]string{
		"PATH":               "/usr/bin",
		"HOME":               "/root",
		"GRIDCHECK_S":        "single-char-not-mapped",
		"GRIDCHECK_UNKNOWN":  "x",
		"LOCAL_IP":           "unprefixed",
		"gridcheck_local_ip": "lowercase",
	})
	require.NoError(t, err)

	assert.Equal(t, args, merged.Args)
	assert.Empty(t, merged.Overrides)
	assert.Empty(t, merged.Warnings)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	r := newTestResolver(t, nil)

	args := make([]string, 2, 8)
	copy(args, []string{"--seed-host", "a"})
	environ := map[string]string{"GRIDCHECK_LOCAL_PORT": "1200"}

	merged, err := r.Merge(args, environ)
	require.NoError(t, err)

	assert.Equal(t, []string{"--seed-host", "a"}, args)
	assert.Equal(t, map[string]string{"GRIDCHECK_LOCAL_PORT": "1200"}, environ)
	assert.Equal(t, []string{"--seed-host", "a", "--local-port", "1200"}, merged.Args)

	merged.Args[0] = "changed"
	assert.Equal(t, "--seed-host", args[0])
}

func TestMerge_InsertsBeforeTerminator(t *testing.T) {
	r := newTestResolver(t, nil)

	merged, err := r.Merge(
		[]string{"--seed-host", "a", "--", "--local-ip"},
		map[string]string{"GRIDCHECK_LOCAL_IP": "10.0.0.5"},
	)
	require.NoError(t, err)

	// "--local-ip" after the terminator is positional and does not count as
	// a command-line value.
	assert.Empty(t, merged.Warnings)
	assert.Equal(t, []string{"--seed-host", "a", "--local-ip", "10.0.0.5", "--", "--local-ip"}, merged.Args)
}

func TestMerge_BoolUsesAttachedForm(t *testing.T) {
	r := newTestResolver(t, nil)

	merged, err := r.Merge(nil, map[string]string{"GRIDCHECK_CHECK_CONFIG": "true"})
	require.NoError(t, err)

	assert.Equal(t, []string{"--check-config=true"}, merged.Args)
}

func TestMerge_SecondaryAliasKeyMapsToPrimary(t *testing.T) {
	r := newTestResolver(t, nil)

	merged, err := r.Merge(nil, map[string]string{"GRIDCHECK_LOCAL_ADDR": "10.0.0.9"})
	require.NoError(t, err)

	assert.Equal(t, []string{"--local-ip", "10.0.0.9"}, merged.Args)
	assert.Equal(t, "GRIDCHECK_LOCAL_ADDR", merged.Overrides[0].EnvKey)
}

func TestMerge_AgreeingKeysOfOneOption(t *testing.T) {
	r := newTestResolver(t, nil)

	merged, err := r.Merge(nil, map[string]string{
		"GRIDCHECK_LOCAL_IP":   "10.0.0.9",
		"GRIDCHECK_LOCAL_ADDR": "10.0.0.9",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"--local-ip", "10.0.0.9"}, merged.Args)
}

func TestMerge_ConflictingEnvironment(t *testing.T) {
	r := newTestResolver(t, nil)

	merged, err := r.Merge(nil, map[string]string{
		"GRIDCHECK_LOCAL_IP":   "10.0.0.9",
		"GRIDCHECK_LOCAL_ADDR": "10.0.0.1",
	})
	require.Error(t, err)
	assert.Nil(t, merged)
	assert.ErrorIs(t, err, ErrConflictingEnvironment)

	var conflict *ConflictingEnvironmentError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "--local-ip", conflict.Alias)
	assert.Equal(t, []string{"GRIDCHECK_LOCAL_ADDR", "GRIDCHECK_LOCAL_IP"}, conflict.EnvKeys)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.9"}, conflict.Values)
	assert.Contains(t, err.Error(), "GRIDCHECK_LOCAL_ADDR")
}

func TestMerge_ConflictingEnvironmentShadowedByCommandLine(t *testing.T) {
	r := newTestResolver(t, nil)

	merged, err := r.Merge([]string{"--local-ip", "1.1.1.1"}, map[string]string{
		"GRIDCHECK_LOCAL_IP":   "10.0.0.9",
		"GRIDCHECK_LOCAL_ADDR": "10.0.0.1",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"--local-ip", "1.1.1.1"}, merged.Args)
	assert.Len(t, merged.Warnings, 2)
}

func TestMerge_Idempotent(t *testing.T) {
	r := newTestResolver(t, nil)
	args := []string{"-s", "a", "--local-ip", "1.1.1.1"}
	environ := map[string]string{
		"GRIDCHECK_LOCAL_IP":       "10.0.0.5",
		"GRIDCHECK_LOCAL_HOSTNAME": "host1",
		"GRIDCHECK_LOCAL_PORT":     "1180",
		"GRIDCHECK_CHECK_CONFIG":   "true",
	}

	first, err := r.Merge(args, environ)
	require.NoError(t, err)
	second, err := r.Merge(args, environ)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
