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
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nscaledev/uni-crud-e2e/pkg/client"
	"github.com/nscaledev/uni-crud-e2e/pkg/openapi"
	"github.com/nscaledev/uni-crud-e2e/pkg/openapi/mock"
	"github.com/nscaledev/uni-crud-e2e/pkg/reporter"

	"k8s.io/utils/ptr"
)

var errBoom = errors.New("boom")

func newTestRunner(t *testing.T, scenarios ...Scenario) (*Runner, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}

	r := &Runner{
		client:    client.New(mock.NewMockClientWithResponsesInterface(gomock.NewController(t))),
		reporter:  reporter.New(out, &reporter.Options{NoColor: true}),
		scenarios: scenarios,
	}

	return r, out
}

func TestSkipsWithoutPrerequisites(t *testing.T) {
	t.Parallel()

	var ran bool

	r, out := newTestRunner(t, Scenario{
		Name:  "needs a room",
		Ready: hasRoom,
		Run: func(context.Context, *Step) error {
			ran = true
			return nil
		},
	})

	summary := r.Run(t.Context())

	require.False(t, ran)
	require.Len(t, summary.Results, 1)
	require.True(t, summary.Results[0].Skipped)
	require.Zero(t, summary.Total())
	require.True(t, summary.Succeeded())
	require.Contains(t, out.String(), "[TEST] Test 1: needs a room")
}

func TestSessionIsShared(t *testing.T) {
	t.Parallel()

	r, _ := newTestRunner(t,
		Scenario{
			Name: "produce",
			Run: func(_ context.Context, step *Step) error {
				step.Session.Token1 = "token"
				step.Session.RoomID = ptr.To[int64](7)

				return nil
			},
		},
		Scenario{
			Name:  "consume",
			Ready: hasToken1AndRoom,
			Run: func(_ context.Context, step *Step) error {
				step.Equal(int64(7), *step.Session.RoomID, "room carried over")

				return nil
			},
		},
	)

	summary := r.Run(t.Context())

	require.False(t, summary.Results[1].Skipped)
	require.Equal(t, 1, summary.Passed())
	require.True(t, summary.Succeeded())
}

func TestErrorScoresOneFailure(t *testing.T) {
	t.Parallel()

	r, out := newTestRunner(t,
		Scenario{
			Name: "broken",
			Run: func(_ context.Context, step *Step) error {
				step.True(true, "before the error")

				return errBoom
			},
		},
		Scenario{
			Name: "after",
			Run: func(_ context.Context, step *Step) error {
				step.True(true, "still runs")

				return nil
			},
		},
	)

	summary := r.Run(t.Context())

	require.Equal(t, 2, summary.Passed())
	require.Equal(t, 1, summary.Failed())
	require.ErrorIs(t, summary.Results[0].Err, errBoom)
	require.False(t, summary.Succeeded())
	require.Contains(t, out.String(), "[ERROR] broken failed: boom")
}

func TestPanicScoresOneFailure(t *testing.T) {
	t.Parallel()

	r, _ := newTestRunner(t,
		Scenario{
			Name: "panics",
			Run: func(context.Context, *Step) error {
				panic("oops")
			},
		},
		Scenario{
			Name: "after",
			Run: func(_ context.Context, step *Step) error {
				step.True(true, "still runs")

				return nil
			},
		},
	)

	summary := r.Run(t.Context())

	require.Len(t, summary.Results, 2)
	require.ErrorIs(t, summary.Results[0].Err, ErrPanic)
	require.Equal(t, 1, summary.Failed())
	require.Equal(t, 1, summary.Passed())
}

func TestClientErrorIsScored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	api := mock.NewMockClientWithResponsesInterface(ctrl)
	api.EXPECT().GetHealthStatusWithResponse(gomock.Any(), gomock.Any()).Return(nil, errBoom)

	out := &bytes.Buffer{}

	r := &Runner{
		client:    client.New(api),
		reporter:  reporter.New(out, &reporter.Options{NoColor: true}),
		scenarios: Scenarios()[:1],
	}

	summary := r.Run(t.Context())

	require.ErrorIs(t, summary.Results[0].Err, errBoom)
	require.Equal(t, 1, summary.Failed())
	require.Contains(t, out.String(), "Health check endpoint failed")
}

func TestAsserter(t *testing.T) {
	t.Parallel()

	result := &Result{}

	a := &Asserter{
		reporter: reporter.New(&bytes.Buffer{}, &reporter.Options{NoColor: true}),
		result:   result,
	}

	require.True(t, a.Equal(http.StatusOK, http.StatusOK, "same"))
	require.False(t, a.Equal(int64(200), 200, "different types"))
	require.False(t, a.Status(nil, http.StatusNotFound, "succeeded"))
	require.True(t, a.Status(&client.StatusError{StatusCode: http.StatusNotFound}, http.StatusNotFound, "expected"))
	require.False(t, a.Status(&client.StatusError{StatusCode: http.StatusForbidden}, http.StatusNotFound, "wrong code"))
	require.False(t, a.Status(errBoom, http.StatusNotFound, "transport"))

	require.Equal(t, 2, result.Passed())
	require.Equal(t, 4, result.Failed())
	require.Equal(t, "expected: 200, got: 200", result.Assertions[1].Detail)
	require.Equal(t, "expected 404 error but request succeeded", result.Assertions[2].Detail)
	require.Equal(t, "unexpected error: boom", result.Assertions[5].Detail)
}

func TestContainsRoom(t *testing.T) {
	t.Parallel()

	rooms := openapi.Rooms{
		{Id: 3, Name: "a"},
		{Id: 7, Name: "b"},
	}

	require.True(t, containsRoom(rooms, ptr.To[int64](7)))
	require.False(t, containsRoom(rooms, ptr.To[int64](5)))
	require.False(t, containsRoom(rooms, nil))
	require.False(t, containsRoom(nil, ptr.To[int64](3)))
}

func TestInterruptedRunReportsFailure(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	var ran bool

	r, out := newTestRunner(t,
		Scenario{
			Name: "passes then interrupts",
			Run: func(_ context.Context, step *Step) error {
				step.True(true, "first")
				cancel()

				return nil
			},
		},
		Scenario{
			Name: "never starts",
			Run: func(context.Context, *Step) error {
				ran = true

				return nil
			},
		},
	)

	summary := r.Run(ctx)

	require.False(t, ran)
	require.Len(t, summary.Results, 1)
	require.Equal(t, 1, summary.Passed())
	require.Zero(t, summary.Failed())
	require.True(t, summary.Interrupted)
	require.False(t, summary.Succeeded())

	r.reporter.Summary(summary.Passed(), summary.Failed(), summary.Interrupted)

	require.Contains(t, out.String(), "[ERROR] Run interrupted: context canceled\n")
	require.Contains(t, out.String(), "[INFO] Failed: 0\n")
	require.Contains(t, out.String(), "[ERROR] Run interrupted before all tests completed\n")
	require.Contains(t, out.String(), "[ERROR] E2E tests FAILED\n")
	require.NotContains(t, out.String(), "PASSED")
}
