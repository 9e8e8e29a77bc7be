// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/petcare/health"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func newAPIServer(t *testing.T, code int, body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		response.Header().Set("Content-Type", "application/json")
		response.WriteHeader(code)
		io.WriteString(response, body)
	}))

	t.Cleanup(server.Close)
	return server
}

func writeConfig(t *testing.T, contents string) string {
	file := filepath.Join(t.TempDir(), "petcare.yaml")
	require.NoError(t, os.WriteFile(file, []byte(contents), 0600))
	return file
}

func testLoadConfigFile(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		file    = writeConfig(t, `
server:
  address: 127.0.0.1:0
  requestTimeout: 3s
api:
  baseURL: http://api.example.com
  timeout: 1500ms
  tracing: true
log:
  level: debug
reload:
  quietPeriod: 2s
`)
	)

	v, cfg, err := loadConfig(newFlagSet(), []string{"--file", file})
	require.NoError(err)
	require.NotNil(v)
	require.NotNil(cfg)

	assert.Equal(file, v.ConfigFileUsed())
	assert.Equal("127.0.0.1:0", cfg.Server.Address)
	assert.Equal(3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal("http://api.example.com", cfg.API.BaseURL)
	assert.Equal(health.DefaultHealthPath, cfg.API.HealthPath)
	assert.Equal(1500*time.Millisecond, cfg.API.Timeout)
	assert.True(cfg.API.Tracing)
	assert.Equal("debug", cfg.Log.Level)
	assert.Equal(2*time.Second, cfg.Reload.QuietPeriod)

	clientOptions := cfg.API.ClientOptions()
	assert.Equal(2500*time.Millisecond, clientOptions.Timeout)
	assert.True(clientOptions.Tracing)
}

func testLoadConfigDefaults(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	t.Setenv("PETCARE_API_BASEURL", "http://localhost:8081")
	_, cfg, err := loadConfig(newFlagSet(), nil)
	require.NoError(err)

	assert.Equal("http://localhost:8081", cfg.API.BaseURL)
	assert.Equal(health.DefaultTimeout, cfg.API.Timeout)
	assert.Equal(":8080", cfg.Server.Address)
	assert.Equal(DefaultQuietPeriod, cfg.Reload.QuietPeriod)
}

func testLoadConfigErrors(t *testing.T) {
	t.Run("BadFlag", func(t *testing.T) {
		_, _, err := loadConfig(newFlagSet(), []string{"--nosuch"})
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, _, err := loadConfig(newFlagSet(), []string{"--file", filepath.Join(t.TempDir(), "nosuch.yaml")})
		assert.Error(t, err)
	})

	t.Run("NoBaseURL", func(t *testing.T) {
		_, _, err := loadConfig(newFlagSet(), []string{"--file", writeConfig(t, "log:\n  level: info\n")})
		assert.Error(t, err)
	})

	t.Run("BadDuration", func(t *testing.T) {
		_, _, err := loadConfig(newFlagSet(), []string{"--file", writeConfig(t, "api:\n  baseURL: http://localhost\n  timeout: soon\n")})
		assert.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("File", testLoadConfigFile)
	t.Run("Defaults", testLoadConfigDefaults)
	t.Run("Errors", testLoadConfigErrors)
}

func TestCheck(t *testing.T) {
	testData := []struct {
		name         string
		code         int
		body         string
		expectedCode int
		expected     health.Status
	}{
		{"Healthy", http.StatusOK, `{"status":"UP"}`, 0, health.StatusHealthy},
		{"Unhealthy", http.StatusServiceUnavailable, `{"status":"DOWN"}`, 1, health.StatusUnhealthy},
	}

	for _, record := range testData {
		t.Run(record.name, func(t *testing.T) {
			var (
				assert  = assert.New(t)
				require = require.New(t)
				api     = newAPIServer(t, record.code, record.body)
				file    = writeConfig(t, "api:\n  baseURL: "+api.URL+"\n")
				output  bytes.Buffer
			)

			assert.Equal(record.expectedCode, run([]string{"--file", file, "--check"}, &output))

			report, err := health.DecodeReport(&output)
			require.NoError(err)
			assert.Equal(record.expected, report.Status)
			assert.Equal(record.expected == health.StatusHealthy, report.APIAvailable)
		})
	}
}

func TestRunBadArguments(t *testing.T) {
	assert.Equal(t, 2, run([]string{"--nosuch"}, io.Discard))
}

func get(t *testing.T, url string) (int, string) {
	response, err := http.Get(url)
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, string(body)
}

func TestApp(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		api     = newAPIServer(t, http.StatusOK, `{"status":"UP"}`)
		file    = writeConfig(t, `
server:
  address: 127.0.0.1:0
api:
  baseURL: `+api.URL+`
metrics:
  disableGoCollector: true
  disableProcessCollector: true
log:
  level: error
`)

		s *http.Server
	)

	v, cfg, err := loadConfig(newFlagSet(), []string{"--file", file})
	require.NoError(err)

	app := fxtest.New(t, appOptions(v, cfg), fx.Populate(&s))
	app.RequireStart()
	defer app.RequireStop()

	base := "http://" + s.Addr

	code, body := get(t, base+health.LiveRoute)
	assert.Equal(http.StatusOK, code)
	assert.Contains(body, `"UP"`)

	code, body = get(t, base+health.ReadyRoute)
	assert.Equal(http.StatusOK, code)
	assert.Contains(body, `"UP"`)

	code, body = get(t, base+health.HealthRoute)
	assert.Equal(http.StatusOK, code)
	assert.Contains(body, `"status":"healthy"`)

	code, _ = get(t, base+"/pets/1/tutors")
	assert.Equal(http.StatusNotFound, code)

	code, body = get(t, base+MetricsRoute)
	assert.Equal(http.StatusOK, code)
	assert.True(strings.Contains(body, "petcare_client_health_check_count"))
}
