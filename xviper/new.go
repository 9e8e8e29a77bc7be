// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"errors"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultNameFlag = "name"
	DefaultFileFlag = "file"
)

// Option configures a Viper instance
type Option func(*viper.Viper) error

// Defaults maps configuration keys onto their default values
type Defaults map[string]interface{}

// WithDefaults applies default values for keys
func WithDefaults(d Defaults) Option {
	return func(v *viper.Viper) error {
		for key, value := range d {
			v.SetDefault(key, value)
		}

		return nil
	}
}

// WithStandardPaths searches the standard locations for a file named after the application
func WithStandardPaths(applicationName string) Option {
	return func(v *viper.Viper) error {
		AddStandardConfigPaths(v, applicationName)
		v.SetConfigName(applicationName)
		return nil
	}
}

// WithEnv allows environment variables to override configuration.  Nested keys use underscores,
// so api.baseURL is read from <PREFIX>_API_BASEURL.
func WithEnv(prefix string) Option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
		return nil
	}
}

// WithFlags binds the flagset to viper keys and applies the DefaultFileFlag and DefaultNameFlag
// flags, if present, to locate the config file.
func WithFlags(fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		BindConfig(v, fs, DefaultFileFlag, DefaultNameFlag)
		return v.BindPFlags(fs)
	}
}

// New creates a Viper and applies options in order.  No configuration is read.
func New(o ...Option) (*viper.Viper, error) {
	v := viper.New()
	for _, f := range o {
		if err := f(v); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Read reads the configuration file.  A config file that cannot be found in the search paths is
// not an error, since defaults and the environment may be enough.  An explicitly set file that
// does not exist is an error.
func Read(v *viper.Viper) error {
	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}

// Watch arranges for onChange to be called whenever the config file changes.  Viper rereads the
// file before calling onChange.  Editors commonly produce several events per save, so onChange
// should be cheap.
func Watch(v *viper.Viper, onChange func(fsnotify.Event)) {
	v.OnConfigChange(onChange)
	v.WatchConfig()
}
