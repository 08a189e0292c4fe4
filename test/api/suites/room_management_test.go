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

var _ = Describe("Room Management", func() {
	var guest *api.Guest

	BeforeEach(func() {
		guest = api.CreateGuest(client, ctx)
	})

	Context("When creating a room", func() {
		Describe("Given a valid payload", func() {
			It("should create the room owned by the caller", func() {
				payload := api.NewRoomPayload().WithDescription("lifecycle").Build()

				room := api.CreateRoomWithCleanup(guest, ctx, payload)
				Expect(room.ID).To(BeNumerically(">", 0))
				Expect(room.Name).To(Equal(payload.Name))
				Expect(room.Description).To(HaveValue(Equal("lifecycle")))
				Expect(room.UserID).To(HaveValue(Equal(guest.User.ID)))
			})

			It("should accept a room without a description", func() {
				room := api.CreateRoomWithCleanup(guest, ctx, api.NewRoomPayload().WithoutDescription().Build())
				Expect(room.Description).To(BeNil())
			})
		})

		Describe("Given an empty name", func() {
			It("should reject the room with 400 Bad Request", func() {
				_, err := guest.Client.CreateRoom(ctx, api.NewRoomPayload().WithName("").Build())
				api.ExpectStatus(err, http.StatusBadRequest)
			})
		})
	})

	Context("When listing rooms", func() {
		It("should include the room in all rooms without authentication", func() {
			room := api.CreateRoomWithCleanup(guest, ctx, api.NewRoomPayload().Build())

			rooms, err := client.ListRooms(ctx)
			Expect(err).NotTo(HaveOccurred())
			api.VerifyRoomPresence(rooms, room.ID)
		})

		It("should only include the caller's rooms in my rooms", func() {
			mine := api.CreateRoomWithCleanup(guest, ctx, api.NewRoomPayload().Build())

			other := api.CreateGuest(client, ctx)
			theirs := api.CreateRoomWithCleanup(other, ctx, api.NewRoomPayload().Build())

			rooms, err := guest.Client.ListMyRooms(ctx)
			Expect(err).NotTo(HaveOccurred())
			api.VerifyRoomPresence(rooms, mine.ID)

			for _, room := range rooms {
				Expect(room.ID).NotTo(Equal(theirs.ID))
			}
		})
	})

	Context("When updating a room", func() {
		It("should persist the new name and description", func() {
			room := api.CreateRoomWithCleanup(guest, ctx, api.NewRoomPayload().Build())

			payload := api.NewRoomPayload().WithDescription("updated").Build()

			updated, err := guest.Client.UpdateRoom(ctx, room.ID, payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal(payload.Name))

			fetched, err := client.GetRoom(ctx, room.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Name).To(Equal(payload.Name))
			Expect(fetched.Description).To(HaveValue(Equal("updated")))
		})
	})

	Context("When deleting a room", func() {
		It("should no longer be retrievable", func() {
			room := api.CreateRoomWithCleanup(guest, ctx, api.NewRoomPayload().Build())

			Expect(guest.Client.DeleteRoom(ctx, room.ID)).To(Succeed())

			_, err := client.GetRoom(ctx, room.ID)
			api.ExpectStatus(err, http.StatusNotFound)
		})
	})
})
