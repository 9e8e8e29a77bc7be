// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/petcare/health"
	"github.com/xmidt-org/petcare/logging"
	"github.com/xmidt-org/petcare/server"
	"github.com/xmidt-org/petcare/xhttp"
	"github.com/xmidt-org/petcare/xmetrics"
	"github.com/xmidt-org/petcare/xviper"
)

const (
	applicationName = "petcare"

	CheckFlag = "check"

	DefaultQuietPeriod = 500 * time.Millisecond
)

// APIConfig locates the remote pet API and describes how to talk to it
type APIConfig struct {
	BaseURL             string
	HealthPath          string
	Timeout             time.Duration
	MaxIdleConnsPerHost int
	Tracing             bool
}

// ClientOptions returns the HTTP client configuration for the remote API.  The client timeout
// is a backstop, a little longer than the per-probe timeout.
func (ac APIConfig) ClientOptions() *xhttp.ClientOptions {
	return &xhttp.ClientOptions{
		Timeout:             ac.Timeout + time.Second,
		MaxIdleConnsPerHost: ac.MaxIdleConnsPerHost,
		Tracing:             ac.Tracing,
	}
}

type ReloadConfig struct {
	// QuietPeriod is how long the config file must go without changes before it is reapplied
	QuietPeriod time.Duration
}

// Config is the complete application configuration
type Config struct {
	Server  server.Options
	API     APIConfig
	Log     logging.Options
	Metrics xmetrics.Options
	Reload  ReloadConfig
}

// defaults declares every key that may come from the environment, since viper only
// unmarshals keys it knows about
func defaults() xviper.Defaults {
	return xviper.Defaults{
		"server.address":          server.DefaultAddress,
		"server.readTimeout":      "30s",
		"server.requestTimeout":   "10s",
		"api.baseURL":             "",
		"api.healthPath":          health.DefaultHealthPath,
		"api.timeout":             health.DefaultTimeout.String(),
		"api.maxIdleConnsPerHost": 0,
		"api.tracing":             false,
		"log.file":                logging.StdoutFile,
		"log.json":                false,
		"log.level":               "INFO",
		"metrics.namespace":       xmetrics.DefaultNamespace,
		"metrics.subsystem":       xmetrics.DefaultSubsystem,
		"reload.quietPeriod":      DefaultQuietPeriod.String(),
	}
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.StringP(xviper.DefaultFileFlag, "f", "", "the configuration file to use.  Overrides the search path.")
	fs.StringP(xviper.DefaultNameFlag, "n", "", "the base name of the configuration file to search for")
	fs.Bool(CheckFlag, false, "check the health of the remote API once, print the report, and exit")
	return fs
}

// loadConfig parses the command line and reads configuration from all sources
func loadConfig(fs *pflag.FlagSet, arguments []string) (*viper.Viper, *Config, error) {
	if err := fs.Parse(arguments); err != nil {
		return nil, nil, err
	}

	v, err := xviper.New(
		xviper.WithDefaults(defaults()),
		xviper.WithStandardPaths(applicationName),
		xviper.WithEnv(applicationName),
		xviper.WithFlags(fs),
	)

	if err != nil {
		return nil, nil, err
	}

	if err := xviper.Read(v); err != nil {
		return nil, nil, fmt.Errorf("unable to read configuration: %w", err)
	}

	cfg := new(Config)
	if err := xviper.Unmarshal(v, cfg); err != nil {
		return nil, nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	if len(cfg.API.BaseURL) == 0 {
		return nil, nil, fmt.Errorf("api.baseURL is required")
	}

	return v, cfg, nil
}
