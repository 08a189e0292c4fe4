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
	"time"
)

// Health is the liveness response.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}

// User is a guest identity.
type User struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Room is a room as returned by the service.
type Room struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	UserID      *int64     `json:"userId,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// RoomPayload is the body of room create and update requests.
type RoomPayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
