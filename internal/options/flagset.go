// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import (
	"strconv"

	"github.com/spf13/pflag"
)

// FlagSet returns a fresh pflag set with every option of r registered under
// its primary long name and shorthand. Additional long aliases share the
// primary flag's value and are hidden from the usage text. The set uses
// [pflag.ContinueOnError] and never exits the process.
func (r *Registry) FlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false

	for i := range r.options {
		opt := &r.options[i]
		names := opt.longNames()
		primary, aliases := names[0], names[1:]
		short := opt.shorthand()

		switch {
		case opt.Kind == KindString && opt.Multiple:
			var def []string
			if opt.Default != "" {
				def = []string{opt.Default}
			}
			fs.StringArrayP(primary, short, def, opt.Help)
		case opt.Kind == KindInt:
			// validated by NewRegistry
			def, _ := strconv.Atoi(opt.Default)
			fs.VarP(newIntValue(def), primary, short, opt.Help)
		case opt.Kind == KindBool:
			def, _ := strconv.ParseBool(opt.Default)
			fs.BoolP(primary, short, def, opt.Help)
		default:
			fs.StringP(primary, short, opt.Default, opt.Help)
		}

		base := fs.Lookup(primary)
		for _, alias := range aliases {
			fs.Var(base.Value, alias, opt.Help)
			f := fs.Lookup(alias)
			f.Hidden = true
			f.NoOptDefVal = base.NoOptDefVal
			f.DefValue = base.DefValue
		}
	}

	return fs
}

// intValue is a pflag int that only accepts base-10 input, the same rule
// NewRegistry applies to defaults. pflag's own int guesses the base from
// the prefix ("0x", "0b", leading zero).
type intValue int

func newIntValue(def int) *intValue {
	v := intValue(def)
	return &v
}

func (i *intValue) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*i = intValue(v)
	return nil
}

func (i *intValue) Type() string { return "int" }

func (i *intValue) String() string { return strconv.Itoa(int(*i)) }

// FlagName returns the pflag name an alias of r is registered under: the
// primary long name of the declaring option.
func (r *Registry) FlagName(alias string) (string, bool) {
	opt, ok := r.Lookup(alias)
	if !ok {
		return "", false
	}

	return opt.longNames()[0], true
}
