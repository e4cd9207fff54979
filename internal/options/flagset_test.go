// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSetRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(
		Option{Aliases: []string{"--seed-host", "-s"}, Multiple: true, Help: "seed"},
		Option{Aliases: []string{"--local-ip", "--local-addr"}, Default: "127.0.0.1"},
		Option{Aliases: []string{"--local-port"}, Kind: KindInt, Default: "1180"},
		Option{Aliases: []string{"--check-config"}, Kind: KindBool},
	)
	require.NoError(t, err)
	return reg
}

func TestFlagSet_Defaults(t *testing.T) {
	fs := newFlagSetRegistry(t).FlagSet("test")
	require.NoError(t, fs.Parse(nil))

	ip, err := fs.GetString("local-ip")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ip)

	port, err := fs.GetInt("local-port")
	require.NoError(t, err)
	assert.Equal(t, 1180, port)

	check, err := fs.GetBool("check-config")
	require.NoError(t, err)
	assert.False(t, check)

	seeds, err := fs.GetStringArray("seed-host")
	require.NoError(t, err)
	assert.Empty(t, seeds)
}

func TestFlagSet_ParsesAllSpellings(t *testing.T) {
	fs := newFlagSetRegistry(t).FlagSet("test")
	err := fs.Parse([]string{
		"-s", "a", "--seed-host=b", "--seed-host", "c",
		"--local-addr", "10.0.0.1",
		"--local-port", "9000",
		"--check-config",
	})
	require.NoError(t, err)

	seeds, _ := fs.GetStringArray("seed-host")
	assert.Equal(t, []string{"a", "b", "c"}, seeds)

	ip, _ := fs.GetString("local-ip")
	assert.Equal(t, "10.0.0.1", ip)

	port, _ := fs.GetInt("local-port")
	assert.Equal(t, 9000, port)

	check, _ := fs.GetBool("check-config")
	assert.True(t, check)
}

func TestFlagSet_HiddenAlias(t *testing.T) {
	fs := newFlagSetRegistry(t).FlagSet("test")

	f := fs.Lookup("local-addr")
	require.NotNil(t, f)
	assert.True(t, f.Hidden)
	assert.Equal(t, "127.0.0.1", f.DefValue)
}

func TestFlagSet_BadInt(t *testing.T) {
	fs := newFlagSetRegistry(t).FlagSet("test")
	err := fs.Parse([]string{"--local-port", "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "local-port")
}

func TestRegistry_FlagName(t *testing.T) {
	reg := newFlagSetRegistry(t)

	name, ok := reg.FlagName("-s")
	require.True(t, ok)
	assert.Equal(t, "seed-host", name)

	name, ok = reg.FlagName("--local-addr")
	require.True(t, ok)
	assert.Equal(t, "local-ip", name)

	_, ok = reg.FlagName("--nope")
	assert.False(t, ok)
}

func TestFlagSet_IntIsBaseTen(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{value: "8080", want: 8080},
		{value: "08080", want: 8080},
		{value: "+1180", want: 1180},
		{value: "0x4A4", wantErr: true},
		{value: "0b10010011100", wantErr: true},
		{value: "0o2234", wantErr: true},
		{value: "1_180", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			fs := newFlagSetRegistry(t).FlagSet("test")

			err := fs.Parse([]string{"--local-port", tt.value})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			port, err := fs.GetInt("local-port")
			require.NoError(t, err)
			assert.Equal(t, tt.want, port)
		})
	}
}
