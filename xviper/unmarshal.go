// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// unmarshaler is the subset of Viper behavior used to decode configuration
type unmarshaler interface {
	Unmarshal(interface{}, ...viper.DecoderConfigOption) error
}

// DecodeHook is the mapstructure hook used for all configuration.  It accepts durations
// as strings like "500ms" and comma separated lists for slices.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// Unmarshal decodes configuration into each value in turn, stopping at the first error
func Unmarshal(u unmarshaler, v ...interface{}) error {
	for _, target := range v {
		if err := u.Unmarshal(target, viper.DecodeHook(DecodeHook())); err != nil {
			return err
		}
	}

	return nil
}

// MustUnmarshal is like Unmarshal, except that it panics on any error
func MustUnmarshal(u unmarshaler, v ...interface{}) {
	if err := Unmarshal(u, v...); err != nil {
		panic(err)
	}
}
