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

// Package config gathers runner configuration from the command line, the
// environment and an optional .env file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/nscaledev/uni-crud-e2e/pkg/client"
	"github.com/nscaledev/uni-crud-e2e/pkg/reporter"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

const (
	// DefaultBaseURL is where a locally started service listens.
	DefaultBaseURL = "http://localhost:8080"

	// DefaultEnvFile is read if present.
	DefaultEnvFile = ".env"
)

var (
	// ErrInvalidEnvironment is raised when an environment variable cannot be
	// parsed as its flag's type.
	ErrInvalidEnvironment = errors.New("invalid environment variable")

	// ErrInvalidOption is raised when an option's value is unusable.
	ErrInvalidOption = errors.New("invalid option")
)

// binding maps a flag to the environment variable that provides its default.
type binding struct {
	flag string
	key  string
	// presence treats any non-empty value as true, see https://no-color.org.
	presence bool
}

//nolint:gochecknoglobals
var bindings = []binding{
	{flag: "base-url", key: "BASE_URL"},
	{flag: "request-timeout", key: "REQUEST_TIMEOUT"},
	{flag: "insecure-skip-verify", key: "INSECURE_SKIP_VERIFY"},
	{flag: "validate-responses", key: "VALIDATE_RESPONSES"},
	{flag: "log-requests", key: "LOG_REQUESTS"},
	{flag: "no-color", key: "NO_COLOR", presence: true},
}

// Options are everything needed to run the scenarios.
type Options struct {
	// BaseURL is the service under test.
	BaseURL string
	// EnvFile is loaded into the environment before it is consulted.
	EnvFile string
	// Client controls the HTTP client.
	Client client.Options
	// Reporter controls console output.
	Reporter reporter.Options
}

// AddFlags registers all options.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}

	if o.EnvFile == "" {
		o.EnvFile = DefaultEnvFile
	}

	f.StringVar(&o.BaseURL, "base-url", o.BaseURL, "Base URL of the service under test.")
	f.StringVar(&o.EnvFile, "env-file", o.EnvFile, "Environment file to load, ignored if absent unless set explicitly.")

	o.Client.AddFlags(f)
	o.Reporter.AddFlags(f)
}

// Complete loads the environment file then applies environment variables
// to any flag that was not set on the command line.  Must be called after
// the flag set has been parsed.
func (o *Options) Complete(f *pflag.FlagSet) error {
	if err := loadEnvFile(o.EnvFile, f.Changed("env-file")); err != nil {
		return err
	}

	var errs []error

	for _, b := range bindings {
		if f.Lookup(b.flag) == nil || f.Changed(b.flag) {
			continue
		}

		value, ok := os.LookupEnv(b.key)
		if !ok || value == "" {
			continue
		}

		if b.presence {
			value = strconv.FormatBool(true)
		}

		if err := f.Set(b.flag, value); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q: %w", ErrInvalidEnvironment, b.key, value, err))
		}
	}

	return utilerrors.NewAggregate(errs)
}

// Validate checks the options are usable, reporting every problem at once.
func (o *Options) Validate() error {
	var errs []error

	u, err := url.Parse(o.BaseURL)

	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("%w: base URL %q: %w", ErrInvalidOption, o.BaseURL, err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("%w: base URL %q must use http or https", ErrInvalidOption, o.BaseURL))
	case u.Host == "":
		errs = append(errs, fmt.Errorf("%w: base URL %q has no host", ErrInvalidOption, o.BaseURL))
	}

	if o.Client.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout %v is negative", ErrInvalidOption, o.Client.RequestTimeout))
	}

	return utilerrors.NewAggregate(errs)
}

// loadEnvFile populates the environment from path, variables already set win.
// A missing file is only an error if it was asked for explicitly.
func loadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}

		return fmt.Errorf("reading env file: %w", err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}

	return nil
}
