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

	"github.com/google/uuid"

	"k8s.io/utils/ptr"
)

// GenerateTestID returns a name unique to this test run.
func GenerateTestID() string {
	return fmt.Sprintf("test-%s", uuid.NewString()[:8])
}

// RoomPayloadBuilder builds room payloads for testing.
type RoomPayloadBuilder struct {
	payload RoomPayload
}

// NewRoomPayload creates a new room payload builder with a unique name.
func NewRoomPayload() *RoomPayloadBuilder {
	return &RoomPayloadBuilder{
		payload: RoomPayload{
			Name:        fmt.Sprintf("testautomation-%s", GenerateTestID()),
			Description: ptr.To("Created by API integration tests"),
		},
	}
}

// WithName sets the room name, pass an empty string to test validation.
func (b *RoomPayloadBuilder) WithName(name string) *RoomPayloadBuilder {
	b.payload.Name = name
	return b
}

// WithDescription sets the room description.
func (b *RoomPayloadBuilder) WithDescription(description string) *RoomPayloadBuilder {
	b.payload.Description = ptr.To(description)
	return b
}

// WithoutDescription omits the description.
func (b *RoomPayloadBuilder) WithoutDescription() *RoomPayloadBuilder {
	b.payload.Description = nil
	return b
}

// Build returns the completed room payload.
func (b *RoomPayloadBuilder) Build() *RoomPayload {
	payload := b.payload

	return &payload
}
