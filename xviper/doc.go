// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xviper loads configuration with viper.

Configuration comes from, in increasing order of precedence: Defaults, a config file located through
the standard paths or named on the command line, environment variables under the application prefix,
and explicitly set command line flags.  Unmarshal decodes into structs using mapstructure hooks so that
durations can be written as "5s".
*/
package xviper
