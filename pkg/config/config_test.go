/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/nscaledev/uni-crud-e2e/pkg/config"
)

// unsetenv removes variables for the duration of the test.
func unsetenv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"BASE_URL", "REQUEST_TIMEOUT", "INSECURE_SKIP_VERIFY", "VALIDATE_RESPONSES", "LOG_REQUESTS", "NO_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func parse(t *testing.T, args ...string) (*config.Options, *pflag.FlagSet) {
	t.Helper()

	options := &config.Options{
		EnvFile: filepath.Join(t.TempDir(), "missing.env"),
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	options.AddFlags(flags)

	require.NoError(t, flags.Parse(args))

	return options, flags
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.env")

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaults(t *testing.T) {
	unsetenv(t)

	options, flags := parse(t)

	require.NoError(t, options.Complete(flags))
	require.NoError(t, options.Validate())
	require.Equal(t, config.DefaultBaseURL, options.BaseURL)
	require.Zero(t, options.Client.RequestTimeout)
	require.False(t, options.Client.InsecureSkipVerify)
	require.False(t, options.Client.ValidateResponses)
	require.False(t, options.Client.LogRequests)
	require.False(t, options.Reporter.NoColor)
}

func TestEnvironment(t *testing.T) {
	unsetenv(t)

	t.Setenv("BASE_URL", "https://rooms.example.com")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("LOG_REQUESTS", "true")
	t.Setenv("NO_COLOR", "yes")

	options, flags := parse(t)

	require.NoError(t, options.Complete(flags))
	require.Equal(t, "https://rooms.example.com", options.BaseURL)
	require.Equal(t, 5*time.Second, options.Client.RequestTimeout)
	require.True(t, options.Client.LogRequests)
	require.True(t, options.Reporter.NoColor)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	unsetenv(t)

	t.Setenv("BASE_URL", "https://rooms.example.com")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	options, flags := parse(t, "--base-url", "http://127.0.0.1:9000", "--request-timeout", "1m")

	require.NoError(t, options.Complete(flags))
	require.Equal(t, "http://127.0.0.1:9000", options.BaseURL)
	require.Equal(t, time.Minute, options.Client.RequestTimeout)
}

func TestEnvFile(t *testing.T) {
	unsetenv(t)

	path := writeEnvFile(t, "BASE_URL=http://from-file:8080\nVALIDATE_RESPONSES=true\n")

	options, flags := parse(t, "--env-file", path)

	require.NoError(t, options.Complete(flags))
	require.Equal(t, "http://from-file:8080", options.BaseURL)
	require.True(t, options.Client.ValidateResponses)
}

func TestEnvironmentOverridesEnvFile(t *testing.T) {
	unsetenv(t)

	t.Setenv("BASE_URL", "http://from-env:8080")

	path := writeEnvFile(t, "BASE_URL=http://from-file:8080\n")

	options, flags := parse(t, "--env-file", path)

	require.NoError(t, options.Complete(flags))
	require.Equal(t, "http://from-env:8080", options.BaseURL)
}

func TestMissingExplicitEnvFile(t *testing.T) {
	unsetenv(t)

	options, flags := parse(t, "--env-file", filepath.Join(t.TempDir(), "nope.env"))

	require.Error(t, options.Complete(flags))
}

func TestInvalidEnvironment(t *testing.T) {
	unsetenv(t)

	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("LOG_REQUESTS", "maybe")

	options, flags := parse(t)

	err := options.Complete(flags)
	require.ErrorIs(t, err, config.ErrInvalidEnvironment)
	require.ErrorContains(t, err, "REQUEST_TIMEOUT")
	require.ErrorContains(t, err, "LOG_REQUESTS")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		timeout time.Duration
		valid   bool
	}{
		{name: "http", baseURL: "http://localhost:8080", valid: true},
		{name: "https", baseURL: "https://rooms.example.com/prefix", valid: true},
		{name: "scheme", baseURL: "ftp://localhost"},
		{name: "host", baseURL: "http://"},
		{name: "garbage", baseURL: "://"},
		{name: "timeout", baseURL: "http://localhost:8080", timeout: -time.Second},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			options := &config.Options{
				BaseURL: test.baseURL,
			}

			options.Client.RequestTimeout = test.timeout

			err := options.Validate()
			if test.valid {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, config.ErrInvalidOption)
		})
	}
}
