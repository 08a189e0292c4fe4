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

// Package runner executes the fixed end-to-end scenario sequence against the
// CRUD service.  Scenarios run strictly one after another, share state only
// via an explicit Session, and report their outcome as a Result.  A scenario
// that fails unexpectedly never stops the ones that follow it.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/nscaledev/uni-crud-e2e/pkg/client"
	"github.com/nscaledev/uni-crud-e2e/pkg/reporter"
)

// ErrPanic is raised when a scenario panics.
var ErrPanic = errors.New("scenario panicked")

// Step is handed to a running scenario.
type Step struct {
	*Asserter

	// Session is shared with all other scenarios.
	Session *Session
	// Client is an unauthenticated client.
	Client *client.Client
	// Reporter prints progress.
	Reporter *reporter.Reporter
}

// As returns a client presenting the given credential.
func (s *Step) As(token string) *client.Client {
	return s.Client.WithToken(token)
}

// Scenario is one fixed step in the sequence.
type Scenario struct {
	// Name is announced before the scenario runs.
	Name string
	// Ready reports whether the session holds everything the scenario needs,
	// if not the scenario is skipped.  Nil means always ready.
	Ready func(*Session) bool
	// Run executes the scenario.  A returned error is logged and scored as a
	// single failure.
	Run func(ctx context.Context, step *Step) error
}

// Runner executes scenarios in order.
type Runner struct {
	client    *client.Client
	reporter  *reporter.Reporter
	scenarios []Scenario
}

// New returns a runner for the standard scenario sequence.
func New(client *client.Client, reporter *reporter.Reporter) *Runner {
	return &Runner{
		client:    client,
		reporter:  reporter,
		scenarios: Scenarios(),
	}
}

// Run executes every scenario in order with a fresh session.  Cancelling the
// context fails the in-flight request and prevents later scenarios from starting.
func (r *Runner) Run(ctx context.Context) *Summary {
	session := &Session{}
	summary := &Summary{}

	for i := range r.scenarios {
		if ctx.Err() != nil {
			r.reporter.Error("Run interrupted: %v", ctx.Err())

			summary.Interrupted = true

			break
		}

		summary.add(r.runScenario(ctx, i+1, &r.scenarios[i], session))
	}

	return summary
}

func (r *Runner) runScenario(ctx context.Context, number int, scenario *Scenario, session *Session) (result *Result) {
	result = &Result{
		Number: number,
		Name:   scenario.Name,
	}

	r.reporter.Test("Test %d: %s", number, scenario.Name)

	if scenario.Ready != nil && !scenario.Ready(session) {
		r.reporter.Info("Skipped: prerequisites from earlier tests are missing")

		result.Skipped = true

		return result
	}

	step := &Step{
		Asserter: &Asserter{
			reporter: r.reporter,
			result:   result,
		},
		Session:  session,
		Client:   r.client,
		Reporter: r.reporter,
	}

	defer func() {
		if v := recover(); v != nil {
			result.Err = fmt.Errorf("%w: %v", ErrPanic, v)

			r.reporter.Error("%s failed: %v", scenario.Name, result.Err)
		}
	}()

	if err := scenario.Run(ctx, step); err != nil {
		result.Err = err

		r.reporter.Error("%s failed: %v", scenario.Name, err)
	}

	return result
}
