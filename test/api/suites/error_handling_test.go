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

	"github.com/nscaledev/uni-crud-e2e/test/api"
)

const missingRoomID = 999999

var _ = Describe("Error Handling", func() {
	Context("When addressing a room that does not exist", func() {
		var guest *api.Guest

		BeforeEach(func() {
			guest = api.CreateGuest(client, ctx)
		})

		It("should return 404 Not Found on read", func() {
			_, err := client.GetRoom(ctx, missingRoomID)
			api.ExpectStatus(err, http.StatusNotFound)
		})

		It("should return 404 Not Found on update", func() {
			_, err := guest.Client.UpdateRoom(ctx, missingRoomID, api.NewRoomPayload().Build())
			api.ExpectStatus(err, http.StatusNotFound)
		})

		It("should return 404 Not Found on delete", func() {
			api.ExpectStatus(guest.Client.DeleteRoom(ctx, missingRoomID), http.StatusNotFound)
		})
	})
})
