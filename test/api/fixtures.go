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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Guest is a guest identity with a client that acts as it.
type Guest struct {
	User   *User
	Token  string
	Client *APIClient
}

// CreateGuest creates a new guest identity.
func CreateGuest(client *APIClient, ctx context.Context) *Guest {
	user, token, err := client.CreateGuestUser(ctx)
	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("Created guest user with ID: %d\n", user.ID)

	return &Guest{
		User:   user,
		Token:  token,
		Client: client.WithAuthToken(token),
	}
}

// CreateRoomWithCleanup creates a room owned by the guest and schedules its deletion.
func CreateRoomWithCleanup(guest *Guest, ctx context.Context, payload *RoomPayload) *Room {
	room, err := guest.Client.CreateRoom(ctx, payload)
	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("Created room with ID: %d\n", room.ID)

	// Runs whether the test passes or fails, rooms deleted by the test are ignored.
	DeferCleanup(func(ctx SpecContext) {
		err := guest.Client.DeleteRoom(ctx, room.ID)
		if err != nil && StatusCodeOf(err) != http.StatusNotFound {
			GinkgoWriter.Printf("Warning: Failed to delete room %d: %v\n", room.ID, err)
			return
		}

		GinkgoWriter.Printf("Cleaned up room: %d\n", room.ID)
	})

	return room
}

// ExpectStatus asserts the error carries the status code.
func ExpectStatus(err error, statusCode int) {
	Expect(err).To(HaveOccurred())

	var httpError *HTTPError

	Expect(errors.As(err, &httpError)).To(BeTrue(), "expected an HTTP error, got %v", err)
	Expect(httpError.StatusCode).To(Equal(statusCode))
}

// VerifyRoomPresence verifies the rooms are present in the list.
func VerifyRoomPresence(rooms []Room, expectedRoomIDs ...int64) {
	roomIDs := make([]int64, len(rooms))

	for i := range rooms {
		roomIDs[i] = rooms[i].ID
	}

	for _, expectedID := range expectedRoomIDs {
		Expect(roomIDs).To(ContainElement(expectedID), "Expected room ID %d to be present in the list", expectedID)
	}
}
