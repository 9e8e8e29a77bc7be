// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNewDefaults(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	v, err := New(
		WithStandardPaths("petcare"),
		WithDefaults(Defaults{
			"api.timeout":    "5s",
			"server.address": ":8080",
		}),
	)

	require.NoError(err)
	require.NotNil(v)
	assert.Equal(5*time.Second, v.GetDuration("api.timeout"))
	assert.Equal(":8080", v.GetString("server.address"))

	// no config file anywhere in the search paths is fine
	assert.NoError(Read(v))
}

func testNewEnv(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	t.Setenv("PETCARE_API_BASEURL", "http://api.example.com")
	v, err := New(WithEnv("petcare"))
	require.NoError(err)
	assert.Equal("http://api.example.com", v.GetString("api.baseURL"))
}

func testNewFile(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		file    = filepath.Join(t.TempDir(), "petcare.yaml")
	)

	require.NoError(os.WriteFile(file, []byte("api:\n  baseURL: http://localhost:8080\n"), 0600))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(DefaultFileFlag, "", "the config file")
	fs.Bool("check", false, "check once")
	require.NoError(fs.Parse([]string{"--file", file, "--check"}))

	v, err := New(WithFlags(fs))
	require.NoError(err)
	require.NoError(Read(v))
	assert.Equal(file, v.ConfigFileUsed())
	assert.Equal("http://localhost:8080", v.GetString("api.baseURL"))
	assert.True(v.GetBool("check"))
}

func testNewMissingFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "nosuch.yaml"))
	assert.Error(t, Read(v))
}

func testNewOptionError(t *testing.T) {
	expectedError := errors.New("expected")
	v, err := New(func(*viper.Viper) error { return expectedError })
	assert.Nil(t, v)
	assert.Equal(t, expectedError, err)
}

func TestNew(t *testing.T) {
	t.Run("Defaults", testNewDefaults)
	t.Run("Env", testNewEnv)
	t.Run("File", testNewFile)
	t.Run("MissingFile", testNewMissingFile)
	t.Run("OptionError", testNewOptionError)
}
