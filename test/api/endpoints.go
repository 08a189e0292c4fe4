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

package api

import (
	"fmt"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

func (e *Endpoints) Health() string {
	return "/healthz"
}

// Authentication endpoints.
func (e *Endpoints) CreateGuestUser() string {
	return "/api/auth/guest"
}

func (e *Endpoints) GetCurrentUser() string {
	return "/api/auth/me"
}

// Room endpoints.
func (e *Endpoints) ListRooms() string {
	return "/api/rooms"
}

func (e *Endpoints) CreateRoom() string {
	return "/api/rooms"
}

func (e *Endpoints) ListMyRooms() string {
	return "/api/rooms/my"
}

func (e *Endpoints) Room(roomID int64) string {
	return fmt.Sprintf("/api/rooms/%d", roomID)
}
