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

// Package fake is an in-memory rooms service for exercising the runner
// without a deployment.  It implements the same wire contract as the real
// service: guest identities with opaque bearer credentials, and rooms owned
// by the identity that created them.
package fake

import (
	"cmp"
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nscaledev/uni-crud-e2e/pkg/openapi"

	"k8s.io/utils/ptr"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "rooms-fake"

type contextKey int

const userKey contextKey = iota

// Option modifies the service's behavior.
type Option func(*Service)

// WithoutOwnership lets any identity modify any room.
func WithoutOwnership() Option {
	return func(s *Service) {
		s.ownership = false
	}
}

// WithHealthStatus overrides the reported health.
func WithHealthStatus(status string) Option {
	return func(s *Service) {
		s.health = status
	}
}

// WithoutGuestCredential omits the Authorization header when creating guests.
func WithoutGuestCredential() Option {
	return func(s *Service) {
		s.guestCredential = false
	}
}

// WithAnonymousAccess treats requests without a credential as an anonymous
// identity that owns nothing, rather than rejecting them.
func WithAnonymousAccess() Option {
	return func(s *Service) {
		s.anonymous = &openapi.User{
			CreatedAt: time.Now().UTC(),
		}
	}
}

// WithRetainedDeletes acknowledges deletes without removing the room.
func WithRetainedDeletes() Option {
	return func(s *Service) {
		s.retainDeletes = true
	}
}

// WithoutNameValidation accepts rooms with an empty name.
func WithoutNameValidation() Option {
	return func(s *Service) {
		s.nameValidation = false
	}
}

// Service holds all state in memory.
type Service struct {
	lock sync.Mutex

	ownership       bool
	health          string
	guestCredential bool
	nameValidation  bool
	retainDeletes   bool
	anonymous       *openapi.User

	users  map[string]*openapi.User
	rooms  map[int64]*openapi.Room
	userID int64
	roomID int64
}

// New creates a new service with empty state.
func New(options ...Option) *Service {
	s := &Service{
		ownership:       true,
		health:          "UP",
		guestCredential: true,
		nameValidation:  true,
		users:           map[string]*openapi.User{},
		rooms:           map[int64]*openapi.Room{},
	}

	for _, o := range options {
		o(s)
	}

	return s
}

// Handler returns the service's routes.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealthStatus)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/guest", s.createGuestUser)

		r.With(s.authenticate).Get("/me", s.getCurrentUser)
	})

	r.Route("/api/rooms", func(r chi.Router) {
		r.Get("/", s.listRooms)
		r.With(s.authenticate).Post("/", s.createRoom)
		r.With(s.authenticate).Get("/my", s.listMyRooms)

		r.Get("/{id}", s.getRoom)
		r.With(s.authenticate).Put("/{id}", s.updateRoom)
		r.With(s.authenticate).Delete("/{id}", s.deleteRoom)
	})

	return r
}

// Rooms returns the number of rooms that exist.
func (s *Service) Rooms() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.rooms)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &openapi.Error{Error: message})
}

// authenticate resolves the bearer credential to a user.
func (s *Service) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" && s.anonymous != nil {
			next.ServeHTTP(w, r.WithContext(contextWithUser(r, s.anonymous)))
			return
		}

		var token openapi.BearerToken

		if err := token.UnmarshalText([]byte(r.Header.Get("Authorization"))); err != nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		s.lock.Lock()
		user, ok := s.users[token.Value]
		s.lock.Unlock()

		if !ok {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithUser(r, user)))
	})
}

func (s *Service) getHealthStatus(w http.ResponseWriter, _ *http.Request) {
	status := http.StatusOK

	if s.health != "UP" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, &openapi.HealthStatus{
		Status:  s.health,
		Service: ptr.To(ServiceName),
	})
}

func (s *Service) createGuestUser(w http.ResponseWriter, _ *http.Request) {
	s.lock.Lock()

	s.userID++

	user := &openapi.User{
		Id:        s.userID,
		CreatedAt: time.Now().UTC(),
	}

	token := uuid.NewString()

	s.users[token] = user

	s.lock.Unlock()

	if s.guestCredential {
		value, _ := openapi.BearerToken{Value: token}.MarshalText()

		w.Header().Set("Authorization", string(value))
	}

	writeJSON(w, http.StatusOK, user)
}

func (s *Service) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userFromContext(r))
}

// list returns rooms matching the filter in creation order.
func (s *Service) list(filter func(*openapi.Room) bool) openapi.Rooms {
	s.lock.Lock()
	defer s.lock.Unlock()

	rooms := openapi.Rooms{}

	for _, room := range s.rooms {
		if filter(room) {
			rooms = append(rooms, *room)
		}
	}

	slices.SortFunc(rooms, func(a, b openapi.Room) int {
		return cmp.Compare(a.Id, b.Id)
	})

	return rooms
}

func (s *Service) listRooms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.list(func(*openapi.Room) bool { return true }))
}

func (s *Service) listMyRooms(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)

	writeJSON(w, http.StatusOK, s.list(func(room *openapi.Room) bool {
		return room.UserId != nil && *room.UserId == user.Id
	}))
}

// decodeRoom reads a create or update request, both have the same shape.
func (s *Service) decodeRoom(w http.ResponseWriter, r *http.Request) (*openapi.RoomCreate, bool) {
	var request openapi.RoomCreate

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request body")
		return nil, false
	}

	if s.nameValidation && strings.TrimSpace(request.Name) == "" {
		writeError(w, http.StatusBadRequest, "Room name is required")
		return nil, false
	}

	return &request, true
}

func (s *Service) createRoom(w http.ResponseWriter, r *http.Request) {
	request, ok := s.decodeRoom(w, r)
	if !ok {
		return
	}

	user := userFromContext(r)

	s.lock.Lock()

	s.roomID++

	room := &openapi.Room{
		Id:          s.roomID,
		Name:        request.Name,
		Description: request.Description,
		UserId:      ptr.To(user.Id),
		CreatedAt:   ptr.To(time.Now().UTC()),
	}

	s.rooms[room.Id] = room

	result := *room

	s.lock.Unlock()

	writeJSON(w, http.StatusCreated, &result)
}

// lookup finds the room named in the path, writing an error if it can't.
func (s *Service) lookup(w http.ResponseWriter, r *http.Request) (*openapi.Room, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid room ID")
		return nil, false
	}

	room, ok := s.rooms[id]
	if !ok {
		writeError(w, http.StatusNotFound, "Room not found")
		return nil, false
	}

	return room, true
}

// authorize checks the caller may modify the room.
func (s *Service) authorize(w http.ResponseWriter, r *http.Request, room *openapi.Room) bool {
	if !s.ownership {
		return true
	}

	if room.UserId == nil || *room.UserId != userFromContext(r).Id {
		writeError(w, http.StatusForbidden, "You do not own this room")
		return false
	}

	return true
}

func (s *Service) getRoom(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	room, ok := s.lookup(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, room)
}

func (s *Service) updateRoom(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	room, ok := s.lookup(w, r)
	if !ok {
		return
	}

	if !s.authorize(w, r, room) {
		return
	}

	request, ok := s.decodeRoom(w, r)
	if !ok {
		return
	}

	room.Name = request.Name
	room.Description = request.Description

	writeJSON(w, http.StatusOK, room)
}

func (s *Service) deleteRoom(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	room, ok := s.lookup(w, r)
	if !ok {
		return
	}

	if !s.authorize(w, r, room) {
		return
	}

	if !s.retainDeletes {
		delete(s.rooms, room.Id)
	}

	w.WriteHeader(http.StatusNoContent)
}
