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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/uni-crud-e2e/test/api"
)

var _ = Describe("Authentication", func() {
	Context("When checking service health", func() {
		It("should report the service is up", func() {
			health, err := client.Health(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(health.Status).To(Equal("UP"))
		})
	})

	Context("When creating a guest user", func() {
		Describe("Given no credentials", func() {
			It("should return a new identity and a bearer token", func() {
				user, token, err := client.CreateGuestUser(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(BeNumerically(">", 0))
				Expect(user.CreatedAt).NotTo(BeZero())
				Expect(token).NotTo(BeEmpty())
			})

			It("should return a distinct identity each time", func() {
				first := api.CreateGuest(client, ctx)
				second := api.CreateGuest(client, ctx)

				Expect(first.User.ID).NotTo(Equal(second.User.ID))
				Expect(first.Token).NotTo(Equal(second.Token))
			})
		})
	})

	Context("When getting the current user", func() {
		Describe("Given a valid token", func() {
			It("should return the identity bound to the token", func() {
				guest := api.CreateGuest(client, ctx)

				user, err := guest.Client.GetCurrentUser(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(guest.User.ID))
			})
		})

		Describe("Given no token", func() {
			It("should reject the request with 401 Unauthorized", func() {
				_, err := client.GetCurrentUser(ctx)
				api.ExpectStatus(err, http.StatusUnauthorized)
			})
		})

		Describe("Given an invalid token", func() {
			It("should reject the request with 401 Unauthorized", func() {
				_, err := client.WithAuthToken("not-a-valid-token").GetCurrentUser(ctx)
				api.ExpectStatus(err, http.StatusUnauthorized)
			})
		})
	})
})
