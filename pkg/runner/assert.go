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

package runner

import (
	"fmt"

	"github.com/nscaledev/uni-crud-e2e/pkg/client"
	"github.com/nscaledev/uni-crud-e2e/pkg/reporter"
)

// Asserter records assertion outcomes against a scenario result and logs them.
type Asserter struct {
	reporter *reporter.Reporter
	result   *Result
}

func (a *Asserter) record(label string, passed bool, detail string) bool {
	a.result.Assertions = append(a.result.Assertions, Assertion{
		Label:  label,
		Passed: passed,
		Detail: detail,
	})

	if passed {
		a.reporter.Passed(label)
	} else {
		a.reporter.Failed(label, detail)
	}

	return passed
}

// True passes if the condition holds.
func (a *Asserter) True(condition bool, label string) bool {
	return a.record(label, condition, "")
}

// Equal passes if expected and actual are strictly equal, that is the same
// type and value.  Both must be comparable.
func (a *Asserter) Equal(expected, actual any, label string) bool {
	if expected == actual {
		return a.record(label, true, "")
	}

	return a.record(label, false, fmt.Sprintf("expected: %v, got: %v", expected, actual))
}

// Status passes if err is a service error carrying the expected status code.
// Negative scenarios use this, a successful request is a failure.
func (a *Asserter) Status(err error, expected int, label string) bool {
	if err == nil {
		return a.record(label, false, fmt.Sprintf("expected %d error but request succeeded", expected))
	}

	if code, ok := client.StatusCode(err); ok && code == expected {
		return a.record(label, true, "")
	}

	return a.record(label, false, fmt.Sprintf("unexpected error: %v", err))
}
