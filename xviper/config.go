// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Configer is the subset of Viper behavior dealing with configuration paths and locations
type Configer interface {
	AddConfigPath(string)
	SetConfigName(string)
	SetConfigFile(string)
}

// AddStandardConfigPaths adds the *nix-style search paths for an application's config file,
// most specific last: /etc/<app>, $HOME/.<app>, and the working directory.
func AddStandardConfigPaths(c Configer, applicationName string) {
	c.AddConfigPath(fmt.Sprintf("/etc/%s", applicationName))
	c.AddConfigPath(fmt.Sprintf("$HOME/.%s", applicationName))
	c.AddConfigPath(".")
}

// FlagLookup is the behavior expected of a pflag.FlagSet to lookup individual flags by longhand name.
type FlagLookup interface {
	Lookup(string) *pflag.Flag
}

// flagValue returns the nonempty value of a flag, if there is one
func flagValue(fl FlagLookup, flag string) (string, bool) {
	if f := fl.Lookup(flag); f != nil {
		if v := f.Value.String(); len(v) > 0 {
			return v, true
		}
	}

	return "", false
}

// BindConfigName passes the value of the given flag to c.SetConfigName.  If the flag is missing
// or empty, the Configer is left alone and this function returns false.
func BindConfigName(c Configer, fl FlagLookup, flag string) bool {
	if v, ok := flagValue(fl, flag); ok {
		c.SetConfigName(v)
		return true
	}

	return false
}

// BindConfigFile passes the value of the given flag to c.SetConfigFile.  If the flag is missing
// or empty, the Configer is left alone and this function returns false.
func BindConfigFile(c Configer, fl FlagLookup, flag string) bool {
	if v, ok := flagValue(fl, flag); ok {
		c.SetConfigFile(v)
		return true
	}

	return false
}

// BindConfig binds an explicit config file if one was given, falling back to a config name.
// The return indicates whether either was bound.
func BindConfig(c Configer, fl FlagLookup, fileFlag, nameFlag string) bool {
	return BindConfigFile(c, fl, fileFlag) || BindConfigName(c, fl, nameFlag)
}
