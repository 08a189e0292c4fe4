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
	"context"
	"fmt"
	"net/http"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/nscaledev/uni-crud-e2e/pkg/client"
	"github.com/nscaledev/uni-crud-e2e/pkg/openapi"
	"github.com/nscaledev/uni-crud-e2e/pkg/reporter"

	"k8s.io/utils/ptr"
)

const (
	// HealthStatusUp is reported by a healthy service.
	HealthStatusUp = "UP"

	// RoomName is the name of the room walked through its lifecycle.
	RoomName = "TS E2E Test Room"
	// RoomDescription is the description of the room walked through its lifecycle.
	RoomDescription = "Created by E2E test"
	// UpdatedRoomName is the name the room is renamed to.
	UpdatedRoomName = "Updated TS E2E Room"
	// UpdatedRoomDescription is the description the room is updated with.
	UpdatedRoomDescription = "Updated by E2E test"

	// MissingRoomID is a room identifier that never exists.
	MissingRoomID int64 = 999999

	tokenLogLength = 20
)

// Scenarios returns the fixed scenario sequence.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name: "Health check endpoint",
			Run:  healthCheck,
		},
		{
			Name: "Create first guest user and extract JWT token",
			Run:  createFirstGuestUser,
		},
		{
			Name:  "Get current user with valid token",
			Ready: hasIdentity1,
			Run:   getCurrentUser,
		},
		{
			Name: "Get current user without token (should fail with 401)",
			Run:  getCurrentUserUnauthenticated,
		},
		{
			Name: "List all rooms (no auth required)",
			Run:  listAllRooms,
		},
		{
			Name:  "Create a room with authentication",
			Ready: hasToken1,
			Run:   createRoom,
		},
		{
			Name: "Create room without authentication (should fail with 401)",
			Run:  createRoomUnauthenticated,
		},
		{
			Name:  "Get room by ID",
			Ready: hasRoom,
			Run:   getRoom,
		},
		{
			Name:  "Update room",
			Ready: hasToken1AndRoom,
			Run:   updateRoom,
		},
		{
			Name:  "Get my rooms (authenticated)",
			Ready: hasToken1,
			Run:   listMyRooms,
		},
		{
			Name: "Get non-existent room (should fail with 404)",
			Run:  getMissingRoom,
		},
		{
			Name:  "Update room without authentication (should fail with 401)",
			Ready: hasRoom,
			Run:   updateRoomUnauthenticated,
		},
		{
			Name: "Create second user and try to update first users room (should fail with 403)",
			Run:  updateRoomAsOtherUser,
		},
		{
			Name:  "Delete room",
			Ready: hasToken1AndRoom,
			Run:   deleteRoom,
		},
		{
			Name:  "Verify room is deleted (should return 404)",
			Ready: hasRoom,
			Run:   getDeletedRoom,
		},
		{
			Name:  "Delete room without authentication (should fail with 401)",
			Ready: hasToken1,
			Run:   deleteRoomUnauthenticated,
		},
		{
			Name:  "Create room with empty name (should fail with 400)",
			Ready: hasToken1,
			Run:   createRoomWithEmptyName,
		},
	}
}

func healthCheck(ctx context.Context, step *Step) error {
	resp, err := step.Client.Health(ctx)
	if err != nil {
		return err
	}

	step.Equal(http.StatusOK, resp.StatusCode, "Health check returns 200")
	step.True(resp.Body.Status == HealthStatusUp, "Health check status is UP")

	if resp.Body.Service != nil {
		step.Reporter.Info("Service: %s", *resp.Body.Service)
	}

	return nil
}

func createFirstGuestUser(ctx context.Context, step *Step) error {
	resp, err := step.Client.CreateGuestUser(ctx)
	if err != nil {
		return err
	}

	step.Equal(http.StatusOK, resp.StatusCode, "Create guest user returns 200")
	step.True(resp.Body.Id > 0, "Guest user has id")
	step.True(!resp.Body.CreatedAt.IsZero(), "Guest user has createdAt")

	token, err := client.Credential(resp.Header)
	if err != nil {
		return fmt.Errorf("extracting JWT token from Authorization header: %w", err)
	}

	step.Session.Token1 = token
	step.Session.UserID1 = ptr.To(resp.Body.Id)

	step.Reporter.Info("JWT token extracted: %s", reporter.Truncate(token, tokenLogLength))
	step.Reporter.Info("User ID: %d", resp.Body.Id)

	return nil
}

func getCurrentUser(ctx context.Context, step *Step) error {
	resp, err := step.As(step.Session.Token1).GetCurrentUser(ctx)
	if err != nil {
		return err
	}

	step.Equal(http.StatusOK, resp.StatusCode, "Get current user returns 200")
	step.Equal(*step.Session.UserID1, resp.Body.Id, "Current user ID matches created user")

	return nil
}

func getCurrentUserUnauthenticated(ctx context.Context, step *Step) error {
	_, err := step.Client.GetCurrentUser(ctx)

	step.Status(err, http.StatusUnauthorized, "Get current user without token returns 401")

	return nil
}

func listAllRooms(ctx context.Context, step *Step) error {
	resp, err := step.Client.ListRooms(ctx)
	if err != nil {
		return err
	}

	step.Equal(http.StatusOK, resp.StatusCode, "List all rooms returns 200")
	step.True(resp.Body != nil, "Rooms response is array")

	return nil
}

func createRoom(ctx context.Context, step *Step) error {
	request := openapi.RoomCreate{
		Name:        RoomName,
		Description: ptr.To(RoomDescription),
	}

	resp, err := step.As(step.Session.Token1).CreateRoom(ctx, request)
	if err != nil {
		return err
	}

	step.Equal(http.StatusCreated, resp.StatusCode, "Create room returns 201")
	step.True(resp.Body.Name == RoomName, "Created room has correct name")

	step.Session.RoomID = ptr.To(resp.Body.Id)

	step.Reporter.Info("Created room with ID: %d", resp.Body.Id)

	return nil
}

func createRoomUnauthenticated(ctx context.Context, step *Step) error {
	request := openapi.RoomCreate{
		Name: "Unauthorized Room",
	}

	_, err := step.Client.CreateRoom(ctx, request)

	step.Status(err, http.StatusUnauthorized, "Create room without auth returns 401")

	return nil
}

func getRoom(ctx context.Context, step *Step) error {
	roomID := *step.Session.RoomID

	resp, err := step.Client.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}

	step.Equal(http.StatusOK, resp.StatusCode, "Get room by ID returns 200")
	step.Equal(roomID, resp.Body.Id, "Retrieved room has correct ID")
	step.True(resp.Body.Name == RoomName, "Retrieved room has correct name")

	return nil
}

func updateRoom(ctx context.Context, step *Step) error {
	request := openapi.RoomUpdate{
		Name:        UpdatedRoomName,
		Description: ptr.To(UpdatedRoomDescription),
	}

	resp, err := step.As(step.Session.Token1).UpdateRoom(ctx, *step.Session.RoomID, request)
	if err != nil {
		return err
	}

	step.Equal(http.StatusOK, resp.StatusCode, "Update room returns 200")
	step.True(resp.Body.Name == UpdatedRoomName, "Updated room has new name")

	return nil
}

func listMyRooms(ctx context.Context, step *Step) error {
	resp, err := step.As(step.Session.Token1).ListMyRooms(ctx)
	if err != nil {
		return err
	}

	step.Equal(http.StatusOK, resp.StatusCode, "Get my rooms returns 200")
	step.True(resp.Body != nil, "My rooms response is array")
	step.True(len(resp.Body) > 0, "My rooms array is not empty")
	step.True(containsRoom(resp.Body, step.Session.RoomID), "My rooms includes the created room")

	return nil
}

// containsRoom checks the created room is among those listed.
func containsRoom(rooms openapi.Rooms, roomID *int64) bool {
	if roomID == nil {
		return false
	}

	ids := make([]int64, len(rooms))

	for i := range rooms {
		ids[i] = rooms[i].Id
	}

	return set.New[int64](ids...).Contains(*roomID)
}

func getMissingRoom(ctx context.Context, step *Step) error {
	_, err := step.Client.GetRoom(ctx, MissingRoomID)

	step.Status(err, http.StatusNotFound, "Get non-existent room returns 404")

	return nil
}

func updateRoomUnauthenticated(ctx context.Context, step *Step) error {
	request := openapi.RoomUpdate{
		Name: "Unauthorized Update",
	}

	_, err := step.Client.UpdateRoom(ctx, *step.Session.RoomID, request)

	step.Status(err, http.StatusUnauthorized, "Update room without auth returns 401")

	return nil
}

// updateRoomAsOtherUser always creates the second identity, the ownership
// check itself needs the room from earlier.
func updateRoomAsOtherUser(ctx context.Context, step *Step) error {
	resp, err := step.Client.CreateGuestUser(ctx)
	if err != nil {
		return fmt.Errorf("creating second guest user: %w", err)
	}

	token, err := client.Credential(resp.Header)
	if err != nil {
		return fmt.Errorf("extracting second JWT token from Authorization header: %w", err)
	}

	step.Session.Token2 = token

	if !hasRoom(step.Session) {
		step.Reporter.Info("No room to update, skipping ownership check")

		return nil
	}

	request := openapi.RoomUpdate{
		Name: "Forbidden Update",
	}

	_, err = step.As(step.Session.Token2).UpdateRoom(ctx, *step.Session.RoomID, request)

	step.Status(err, http.StatusForbidden, "Update another users room returns 403")

	return nil
}

func deleteRoom(ctx context.Context, step *Step) error {
	resp, err := step.As(step.Session.Token1).DeleteRoom(ctx, *step.Session.RoomID)
	if err != nil {
		return err
	}

	step.Equal(http.StatusNoContent, resp.StatusCode, "Delete room returns 204")

	return nil
}

func getDeletedRoom(ctx context.Context, step *Step) error {
	_, err := step.Client.GetRoom(ctx, *step.Session.RoomID)

	step.Status(err, http.StatusNotFound, "Get deleted room returns 404")

	return nil
}

// deleteRoomUnauthenticated needs a room of its own as the lifecycle room is
// gone by now.  Cleanup is best effort and not scored.
func deleteRoomUnauthenticated(ctx context.Context, step *Step) error {
	owner := step.As(step.Session.Token1)

	request := openapi.RoomCreate{
		Name: "Room to delete",
	}

	resp, err := owner.CreateRoom(ctx, request)
	if err != nil {
		return fmt.Errorf("creating room to delete: %w", err)
	}

	roomID := resp.Body.Id

	_, err = step.Client.DeleteRoom(ctx, roomID)

	step.Status(err, http.StatusUnauthorized, "Delete room without auth returns 401")

	if _, err := owner.DeleteRoom(ctx, roomID); err != nil {
		step.Reporter.Info("Warning: failed to clean up room %d: %v", roomID, err)
	}

	return nil
}

func createRoomWithEmptyName(ctx context.Context, step *Step) error {
	request := openapi.RoomCreate{
		Name: "",
	}

	_, err := step.As(step.Session.Token1).CreateRoom(ctx, request)

	step.Status(err, http.StatusBadRequest, "Create room with empty name returns 400")

	return nil
}
