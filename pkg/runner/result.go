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

// Assertion is the outcome of a single check.
type Assertion struct {
	// Label describes what was checked.
	Label string
	// Passed is true if the check held.
	Passed bool
	// Detail explains a failure.
	Detail string
}

// Result is the outcome of a scenario.
type Result struct {
	// Number is the scenario's 1-based position in the sequence.
	Number int
	// Name is the scenario's name.
	Name string
	// Skipped is set when the session lacked the scenario's prerequisites.
	Skipped bool
	// Assertions are the checks evaluated, in order.
	Assertions []Assertion
	// Err is an unexpected error that aborted the scenario, it scores
	// as a single failure.
	Err error
}

// Passed returns the number of passing assertions.
func (r *Result) Passed() int {
	var n int

	for i := range r.Assertions {
		if r.Assertions[i].Passed {
			n++
		}
	}

	return n
}

// Failed returns the number of failing assertions plus one for an unexpected error.
func (r *Result) Failed() int {
	n := len(r.Assertions) - r.Passed()

	if r.Err != nil {
		n++
	}

	return n
}

// Summary aggregates scenario results.
type Summary struct {
	// Results are in execution order.
	Results []*Result
	// Interrupted is set when the run was cancelled before all scenarios ran.
	Interrupted bool
}

func (s *Summary) add(result *Result) {
	s.Results = append(s.Results, result)
}

// Passed returns the total number of passing assertions.
func (s *Summary) Passed() int {
	var n int

	for _, result := range s.Results {
		n += result.Passed()
	}

	return n
}

// Failed returns the total number of failures.
func (s *Summary) Failed() int {
	var n int

	for _, result := range s.Results {
		n += result.Failed()
	}

	return n
}

// Total returns the number of assertions evaluated, counting unexpected errors.
func (s *Summary) Total() int {
	return s.Passed() + s.Failed()
}

// Skipped returns the number of scenarios that did not run.
func (s *Summary) Skipped() int {
	var n int

	for _, result := range s.Results {
		if result.Skipped {
			n++
		}
	}

	return n
}

// Succeeded is true if nothing failed and every scenario had the chance to run.
func (s *Summary) Succeeded() bool {
	return s.Failed() == 0 && !s.Interrupted
}
