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

var _ = Describe("Authorization", func() {
	var (
		owner *api.Guest
		room  *api.Room
	)

	BeforeEach(func() {
		owner = api.CreateGuest(client, ctx)
		room = api.CreateRoomWithCleanup(owner, ctx, api.NewRoomPayload().Build())
	})

	Context("When modifying a room without authentication", func() {
		It("should reject creation with 401 Unauthorized", func() {
			_, err := client.CreateRoom(ctx, api.NewRoomPayload().Build())
			api.ExpectStatus(err, http.StatusUnauthorized)
		})

		It("should reject updates with 401 Unauthorized", func() {
			_, err := client.UpdateRoom(ctx, room.ID, api.NewRoomPayload().Build())
			api.ExpectStatus(err, http.StatusUnauthorized)
		})

		It("should reject deletion with 401 Unauthorized", func() {
			api.ExpectStatus(client.DeleteRoom(ctx, room.ID), http.StatusUnauthorized)
		})

		It("should reject listing my rooms with 401 Unauthorized", func() {
			_, err := client.ListMyRooms(ctx)
			api.ExpectStatus(err, http.StatusUnauthorized)
		})
	})

	Context("When modifying another user's room", func() {
		var intruder *api.Guest

		BeforeEach(func() {
			intruder = api.CreateGuest(client, ctx)
		})

		It("should reject updates with 403 Forbidden", func() {
			_, err := intruder.Client.UpdateRoom(ctx, room.ID, api.NewRoomPayload().Build())
			api.ExpectStatus(err, http.StatusForbidden)
		})

		It("should reject deletion with 403 Forbidden", func() {
			api.ExpectStatus(intruder.Client.DeleteRoom(ctx, room.ID), http.StatusForbidden)
		})
	})
})
