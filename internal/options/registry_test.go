// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_Valid(t *testing.T) {
	reg, err := NewRegistry(
		Option{Aliases: []string{"--seed-host", "-s"}, Required: true, Multiple: true},
		Option{Aliases: []string{"--local-port"}, Kind: KindInt, Default: "1180"},
		Option{Aliases: []string{"--check-config"}, Kind: KindBool, Default: "false"},
	)
	require.NoError(t, err)

	opts := reg.Options()
	require.Len(t, opts, 3)
	assert.Equal(t, "--seed-host", opts[0].Primary())
	assert.Equal(t, "seed_host", opts[0].Dest())

	opt, ok := reg.Lookup("-s")
	require.True(t, ok)
	assert.Equal(t, "--seed-host", opt.Primary())

	_, ok = reg.Lookup("--unknown")
	assert.False(t, ok)
}

func TestNewRegistry_CopiesDeclarations(t *testing.T) {
	aliases := []string{"--local-ip"}
	reg, err := NewRegistry(Option{Aliases: aliases})
	require.NoError(t, err)

	aliases[0] = "--changed"

	_, ok := reg.Lookup("--local-ip")
	assert.True(t, ok)
	assert.Equal(t, "--local-ip", reg.Options()[0].Primary())
}

func TestNewRegistry_InvalidDeclarations(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{
			name: "no aliases",
			opts: []Option{{}},
			want: ErrInvalidOption,
		},
		{
			name: "short primary alias",
			opts: []Option{{Aliases: []string{"-s", "--seed-host"}}},
			want: ErrInvalidOption,
		},
		{
			name: "alias without dashes",
			opts: []Option{{Aliases: []string{"--local-ip", "local"}}},
			want: ErrInvalidOption,
		},
		{
			name: "triple dash",
			opts: []Option{{Aliases: []string{"---local-ip"}}},
			want: ErrInvalidOption,
		},
		{
			name: "two short aliases",
			opts: []Option{{Aliases: []string{"--seed-host", "-s", "-S"}}},
			want: ErrInvalidOption,
		},
		{
			name: "bad int default",
			opts: []Option{{Aliases: []string{"--local-port"}, Kind: KindInt, Default: "abc"}},
			want: ErrInvalidOption,
		},
		{
			name: "required bool",
			opts: []Option{{Aliases: []string{"--check-config"}, Kind: KindBool, Required: true}},
			want: ErrInvalidOption,
		},
		{
			name: "repeatable int",
			opts: []Option{{Aliases: []string{"--port"}, Kind: KindInt, Multiple: true}},
			want: ErrInvalidOption,
		},
		{
			name: "alias with equals sign",
			opts: []Option{{Aliases: []string{"--local=ip"}}},
			want: ErrInvalidOption,
		},
		{
			name: "duplicate alias",
			opts: []Option{
				{Aliases: []string{"--seed-host", "-s"}},
				{Aliases: []string{"--source", "-s"}},
			},
			want: ErrDuplicateAlias,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := NewRegistry(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, reg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOption_Present(t *testing.T) {
	opt := Option{Aliases: []string{"--seed-host", "--seed", "-s"}}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "absent", args: []string{"--local-ip", "10.0.0.1"}, want: nil},
		{name: "primary", args: []string{"--seed-host", "a"}, want: []string{"--seed-host"}},
		{name: "attached long", args: []string{"--seed=a"}, want: []string{"--seed"}},
		{name: "short", args: []string{"-s", "a"}, want: []string{"-s"}},
		{name: "attached short", args: []string{"-sa"}, want: []string{"-s"}},
		{name: "several", args: []string{"-s", "a", "--seed-host", "b"}, want: []string{"--seed-host", "-s"}},
		{name: "prefix of another long alias", args: []string{"--seed-hosts", "a"}, want: nil},
		{name: "after terminator", args: []string{"--", "--seed-host"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, opt.Present(tt.args))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
