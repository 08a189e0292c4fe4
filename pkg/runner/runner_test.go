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

package runner_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/uni-crud-e2e/pkg/client"
	"github.com/nscaledev/uni-crud-e2e/pkg/openapi"
	"github.com/nscaledev/uni-crud-e2e/pkg/reporter"
	"github.com/nscaledev/uni-crud-e2e/pkg/runner"
	"github.com/nscaledev/uni-crud-e2e/test/fake"
)

const scenarioCount = 17

// newRunner returns a runner talking to baseURL, output is captured in the buffer.
func newRunner(baseURL string, validate bool) (*runner.Runner, *bytes.Buffer) {
	api, err := client.NewAPI(baseURL, &client.Options{
		ValidateResponses: validate,
	})
	Expect(err).NotTo(HaveOccurred())

	out := &bytes.Buffer{}

	return runner.New(client.New(api), reporter.New(out, &reporter.Options{NoColor: true})), out
}

// serve starts the handler and returns its URL.
func serve(handler http.Handler) string {
	server := httptest.NewServer(handler)
	DeferCleanup(server.Close)

	return server.URL
}

// expectConsistent checks the totals agree with the individual results.
func expectConsistent(summary *runner.Summary) {
	var evaluated int

	for _, result := range summary.Results {
		evaluated += len(result.Assertions)

		if result.Err != nil {
			evaluated++
		}

		if result.Skipped {
			Expect(result.Assertions).To(BeEmpty())
			Expect(result.Err).NotTo(HaveOccurred())
		}
	}

	Expect(summary.Passed() + summary.Failed()).To(Equal(evaluated))
	Expect(summary.Total()).To(Equal(evaluated))
}

// failedScenarios returns the numbers of scenarios with any failure.
func failedScenarios(summary *runner.Summary) []int {
	var numbers []int

	for _, result := range summary.Results {
		if result.Failed() > 0 {
			numbers = append(numbers, result.Number)
		}
	}

	return numbers
}

var _ = Describe("Scenario sequence", func() {
	It("has a fixed order", func() {
		scenarios := runner.Scenarios()
		Expect(scenarios).To(HaveLen(scenarioCount))
		Expect(scenarios[0].Name).To(Equal("Health check endpoint"))
		Expect(scenarios[1].Name).To(Equal("Create first guest user and extract JWT token"))
		Expect(scenarios[scenarioCount-1].Name).To(Equal("Create room with empty name (should fail with 400)"))
	})
})

var _ = Describe("Runner", func() {
	var (
		service *fake.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("against a conforming service", func() {
		BeforeEach(func() {
			service = fake.New()
		})

		It("passes every assertion", func() {
			r, out := newRunner(serve(service.Handler()), true)

			summary := r.Run(ctx)

			Expect(summary.Results).To(HaveLen(scenarioCount))
			Expect(summary.Skipped()).To(BeZero())
			Expect(summary.Failed()).To(BeZero())
			Expect(summary.Passed()).To(Equal(29))
			Expect(summary.Succeeded()).To(BeTrue())
			expectConsistent(summary)

			for i, result := range summary.Results {
				Expect(result.Number).To(Equal(i + 1))
			}

			Expect(out.String()).To(ContainSubstring("[TEST] Test 1: Health check endpoint"))
			Expect(out.String()).To(ContainSubstring("[INFO] ✓ Test passed: Health check returns 200"))
			Expect(out.String()).To(ContainSubstring("[INFO] Service: " + fake.ServiceName))
			Expect(out.String()).NotTo(ContainSubstring("[ERROR]"))
		})

		It("cleans up every room it creates", func() {
			r, _ := newRunner(serve(service.Handler()), false)

			Expect(r.Run(ctx).Succeeded()).To(BeTrue())
			Expect(service.Rooms()).To(BeZero())
		})

		It("starts nothing once cancelled", func() {
			r, out := newRunner(serve(service.Handler()), false)

			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			summary := r.Run(cancelled)

			Expect(summary.Results).To(BeEmpty())
			Expect(summary.Interrupted).To(BeTrue())
			Expect(summary.Succeeded()).To(BeFalse())
			Expect(out.String()).To(ContainSubstring("Run interrupted"))
		})
	})

	Context("against a service without ownership checks", func() {
		BeforeEach(func() {
			service = fake.New(fake.WithoutOwnership())
		})

		It("fails the forbidden update", func() {
			r, out := newRunner(serve(service.Handler()), false)

			summary := r.Run(ctx)

			Expect(summary.Succeeded()).To(BeFalse())
			Expect(summary.Failed()).To(Equal(1))
			Expect(summary.Passed()).To(Equal(28))
			expectConsistent(summary)

			result := summary.Results[12]
			Expect(result.Number).To(Equal(13))
			Expect(result.Failed()).To(Equal(1))
			Expect(result.Assertions).To(HaveLen(1))
			Expect(result.Assertions[0].Detail).To(Equal("expected 403 error but request succeeded"))

			Expect(out.String()).To(ContainSubstring("[ERROR] ✗ Test failed: Update another users room returns 403"))
		})
	})

	Context("against an unhealthy service", func() {
		BeforeEach(func() {
			service = fake.New(fake.WithHealthStatus("DOWN"))
		})

		It("scores the health check as one failure and carries on", func() {
			r, _ := newRunner(serve(service.Handler()), false)

			summary := r.Run(ctx)

			Expect(summary.Failed()).To(Equal(1))
			Expect(summary.Passed()).To(Equal(27))
			Expect(summary.Results[0].Err).To(HaveOccurred())

			code, ok := client.StatusCode(summary.Results[0].Err)
			Expect(ok).To(BeTrue())
			Expect(code).To(Equal(http.StatusServiceUnavailable))
			expectConsistent(summary)
		})
	})

	Context("against a service that issues no guest credential", func() {
		BeforeEach(func() {
			service = fake.New(fake.WithoutGuestCredential())
		})

		It("fails credential extraction and skips what depends on it", func() {
			r, out := newRunner(serve(service.Handler()), false)

			summary := r.Run(ctx)

			Expect(summary.Results).To(HaveLen(scenarioCount))
			Expect(summary.Succeeded()).To(BeFalse())
			expectConsistent(summary)

			guest := summary.Results[1]
			Expect(guest.Passed()).To(Equal(3))
			Expect(guest.Failed()).To(Equal(1))
			Expect(guest.Err).To(MatchError(openapi.ErrInvalidBearerToken))

			var skipped []int

			for _, result := range summary.Results {
				if result.Skipped {
					skipped = append(skipped, result.Number)
				}
			}

			Expect(skipped).To(ConsistOf(3, 6, 8, 9, 10, 12, 14, 15, 16, 17))
			Expect(failedScenarios(summary)).To(ConsistOf(2, 13))
			Expect(summary.Passed()).To(Equal(10))
			Expect(summary.Failed()).To(Equal(2))

			Expect(out.String()).To(ContainSubstring("[ERROR] Create first guest user and extract JWT token failed"))
		})
	})

	Context("against a service that accepts missing credentials", func() {
		BeforeEach(func() {
			service = fake.New(fake.WithAnonymousAccess())
		})

		It("fails every unauthenticated check", func() {
			r, _ := newRunner(serve(service.Handler()), false)

			summary := r.Run(ctx)

			Expect(failedScenarios(summary)).To(ConsistOf(4, 7, 12, 16))
			Expect(summary.Failed()).To(Equal(4))
			Expect(summary.Passed()).To(Equal(25))
			expectConsistent(summary)

			Expect(summary.Results[3].Assertions[0].Detail).To(Equal("expected 401 error but request succeeded"))
			Expect(summary.Results[11].Assertions[0].Detail).To(ContainSubstring("unexpected error"))
		})
	})

	Context("against a service that does not remove deleted rooms", func() {
		BeforeEach(func() {
			service = fake.New(fake.WithRetainedDeletes())
		})

		It("fails the deletion check", func() {
			r, out := newRunner(serve(service.Handler()), false)

			summary := r.Run(ctx)

			Expect(failedScenarios(summary)).To(ConsistOf(15))
			Expect(summary.Failed()).To(Equal(1))
			Expect(summary.Passed()).To(Equal(28))
			expectConsistent(summary)

			Expect(summary.Results[14].Assertions[0].Detail).To(Equal("expected 404 error but request succeeded"))
			Expect(out.String()).To(ContainSubstring("[ERROR] ✗ Test failed: Get deleted room returns 404"))
		})
	})

	Context("against a service that accepts empty room names", func() {
		BeforeEach(func() {
			service = fake.New(fake.WithoutNameValidation())
		})

		It("fails the validation check", func() {
			r, _ := newRunner(serve(service.Handler()), false)

			summary := r.Run(ctx)

			Expect(failedScenarios(summary)).To(ConsistOf(17))
			Expect(summary.Failed()).To(Equal(1))
			Expect(summary.Passed()).To(Equal(28))
			expectConsistent(summary)

			Expect(summary.Results[16].Assertions[0].Detail).To(Equal("expected 400 error but request succeeded"))
			Expect(service.Rooms()).To(Equal(1))
		})
	})

	Context("against an unreachable service", func() {
		It("fails each runnable scenario once and skips the rest", func() {
			server := httptest.NewServer(http.NotFoundHandler())
			baseURL := server.URL
			server.Close()

			r, _ := newRunner(baseURL, false)

			summary := r.Run(ctx)

			Expect(summary.Results).To(HaveLen(scenarioCount))
			Expect(summary.Passed()).To(BeZero())
			Expect(summary.Succeeded()).To(BeFalse())
			expectConsistent(summary)

			var skipped []int

			for _, result := range summary.Results {
				if result.Skipped {
					skipped = append(skipped, result.Number)

					continue
				}

				Expect(result.Failed()).To(Equal(1), "scenario %d", result.Number)
			}

			Expect(skipped).To(ConsistOf(3, 6, 8, 9, 10, 12, 14, 15, 16, 17))
			Expect(summary.Failed()).To(Equal(scenarioCount - len(skipped)))
		})
	})
})
