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

// Package reporter writes human readable test progress to the console.
package reporter

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

const separator = "========================================="

// Options control console output.
type Options struct {
	// NoColor disables colored severity tags.
	NoColor bool
}

// AddFlags registers the options, current values are used as defaults.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.BoolVar(&o.NoColor, "no-color", o.NoColor, "Disable colored output.")
}

// Reporter prints tagged lines.  Color is automatically disabled when the
// output is not a terminal or NO_COLOR is set.
type Reporter struct {
	out  io.Writer
	lock sync.Mutex

	info  *color.Color
	error *color.Color
	test  *color.Color
}

// New returns a reporter writing to out.
func New(out io.Writer, options *Options) *Reporter {
	r := &Reporter{
		out:   out,
		info:  color.New(color.FgGreen),
		error: color.New(color.FgRed),
		test:  color.New(color.FgYellow),
	}

	if options != nil && options.NoColor {
		r.info.DisableColor()
		r.error.DisableColor()
		r.test.DisableColor()
	}

	return r
}

func (r *Reporter) println(tag *color.Color, name, message string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	fmt.Fprintf(r.out, "%s %s\n", tag.Sprintf("[%s]", name), message)
}

// Info prints an informational line.
func (r *Reporter) Info(format string, a ...any) {
	r.println(r.info, "INFO", fmt.Sprintf(format, a...))
}

// Error prints an error line.
func (r *Reporter) Error(format string, a ...any) {
	r.println(r.error, "ERROR", fmt.Sprintf(format, a...))
}

// Test announces a test.
func (r *Reporter) Test(format string, a ...any) {
	r.println(r.test, "TEST", fmt.Sprintf(format, a...))
}

// Passed records a passing assertion.
func (r *Reporter) Passed(label string) {
	r.Info("✓ Test passed: %s", label)
}

// Failed records a failing assertion, detail is optional.
func (r *Reporter) Failed(label, detail string) {
	if detail == "" {
		r.Error("✗ Test failed: %s", label)

		return
	}

	r.Error("✗ Test failed: %s (%s)", label, detail)
}

// Banner prints a heading between separators.
func (r *Reporter) Banner(lines ...string) {
	r.Info(separator)

	for _, line := range lines {
		r.Info("%s", line)
	}

	r.Info(separator)
}

// Summary prints the final result block.  An interrupted run is reported as
// failed even when no assertion failed.
func (r *Reporter) Summary(passed, failed int, interrupted bool) {
	r.lock.Lock()
	fmt.Fprintln(r.out)
	r.lock.Unlock()

	r.Banner("E2E Test Results")
	r.Info("Total tests: %d", passed+failed)
	r.Info("Passed: %d", passed)
	r.Info("Failed: %d", failed)
	r.Info(separator)

	if interrupted {
		r.Error("Run interrupted before all tests completed")
	}

	if failed > 0 || interrupted {
		r.Error("E2E tests FAILED")

		return
	}

	r.Info("All E2E tests PASSED ✓")
}

// Truncate shortens secrets for logging.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
