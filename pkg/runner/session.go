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

// Session is the state captured by early scenarios and consumed by later ones.
// It lives for a single run and is threaded explicitly through every scenario.
type Session struct {
	// Token1 is the credential of the first guest identity.
	Token1 string
	// Token2 is the credential of the second guest identity.
	Token2 string
	// UserID1 is the identifier of the first guest identity.
	UserID1 *int64
	// RoomID is the room created by the first guest identity.
	RoomID *int64
}

func hasToken1(s *Session) bool {
	return s.Token1 != ""
}

func hasIdentity1(s *Session) bool {
	return s.Token1 != "" && s.UserID1 != nil
}

func hasRoom(s *Session) bool {
	return s.RoomID != nil
}

func hasToken1AndRoom(s *Session) bool {
	return hasToken1(s) && hasRoom(s)
}
