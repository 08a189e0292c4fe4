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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
)

// ErrMissingCredential is raised when a guest user is returned without a token.
var ErrMissingCredential = errors.New("missing bearer credential")

// HTTPError is returned when the service responds with an unexpected status.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	TraceID    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code %d, body: %s (trace ID: %s)", e.Method, e.Path, e.StatusCode, e.Body, e.TraceID)
}

// StatusCodeOf returns the status code carried by an HTTPError, or zero.
func StatusCodeOf(err error) int {
	var httpError *HTTPError

	if errors.As(err, &httpError) {
		return httpError.StatusCode
	}

	return 0
}

type APIClient struct {
	baseURL   string
	client    *http.Client
	authToken string
	config    *TestConfig
	endpoints *Endpoints
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// WithAuthToken returns a copy of the client presenting the token.
func (c *APIClient) WithAuthToken(token string) *APIClient {
	copied := *c
	copied.authToken = token

	return &copied
}

// createTraceParent creates a W3C traceparent header value, each request gets
// a new trace so failures can be found in the service logs.
func createTraceParent() string {
	traceID := strings.ReplaceAll(uuid.NewString(), "-", "")
	spanID := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	if parts := strings.Split(traceParent, "-"); len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest issues a request, an expectedStatus of zero accepts any status.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body any, expectedStatus int) (*http.Response, []byte, error) {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		ginkgo.GinkgoWriter.Printf("[%s %s] ERROR http request failed duration=%s traceparent=%s error=%v\n", method, path, duration, traceParent, err)
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s\n", method, path, expectedStatus, resp.StatusCode, string(respBody))
		ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))

		return resp, respBody, &HTTPError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			TraceID:    extractTraceID(traceParent),
		}
	}

	return resp, respBody, nil
}

// doJSON issues a request and decodes the response into result.
func doJSON[T any](ctx context.Context, c *APIClient, method, path string, body any, expectedStatus int) (*T, *http.Response, error) {
	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, method, path, body, expectedStatus)
	if err != nil {
		return nil, resp, err
	}

	var result T

	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, resp, fmt.Errorf("unmarshaling %s %s response: %w", method, path, err)
	}

	return &result, resp, nil
}

func (c *APIClient) Health(ctx context.Context) (*Health, error) {
	health, _, err := doJSON[Health](ctx, c, http.MethodGet, c.endpoints.Health(), nil, http.StatusOK)

	return health, err
}

// CreateGuestUser creates a guest identity and returns it with its bearer token.
func (c *APIClient) CreateGuestUser(ctx context.Context) (*User, string, error) {
	user, resp, err := doJSON[User](ctx, c, http.MethodPost, c.endpoints.CreateGuestUser(), nil, http.StatusOK)
	if err != nil {
		return nil, "", fmt.Errorf("creating guest user: %w", err)
	}

	token, ok := strings.CutPrefix(resp.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return nil, "", ErrMissingCredential
	}

	return user, token, nil
}

func (c *APIClient) GetCurrentUser(ctx context.Context) (*User, error) {
	user, _, err := doJSON[User](ctx, c, http.MethodGet, c.endpoints.GetCurrentUser(), nil, http.StatusOK)

	return user, err
}

func (c *APIClient) ListRooms(ctx context.Context) ([]Room, error) {
	rooms, _, err := doJSON[[]Room](ctx, c, http.MethodGet, c.endpoints.ListRooms(), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}

	return *rooms, nil
}

func (c *APIClient) ListMyRooms(ctx context.Context) ([]Room, error) {
	rooms, _, err := doJSON[[]Room](ctx, c, http.MethodGet, c.endpoints.ListMyRooms(), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing my rooms: %w", err)
	}

	return *rooms, nil
}

func (c *APIClient) CreateRoom(ctx context.Context, payload *RoomPayload) (*Room, error) {
	room, _, err := doJSON[Room](ctx, c, http.MethodPost, c.endpoints.CreateRoom(), payload, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("creating room: %w", err)
	}

	return room, nil
}

func (c *APIClient) GetRoom(ctx context.Context, roomID int64) (*Room, error) {
	room, _, err := doJSON[Room](ctx, c, http.MethodGet, c.endpoints.Room(roomID), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting room: %w", err)
	}

	return room, nil
}

func (c *APIClient) UpdateRoom(ctx context.Context, roomID int64, payload *RoomPayload) (*Room, error) {
	room, _, err := doJSON[Room](ctx, c, http.MethodPut, c.endpoints.Room(roomID), payload, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("updating room: %w", err)
	}

	return room, nil
}

func (c *APIClient) DeleteRoom(ctx context.Context, roomID int64) error {
	//nolint:bodyclose // response body is closed in doRequest
	if _, _, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.Room(roomID), nil, http.StatusNoContent); err != nil {
		return fmt.Errorf("deleting room: %w", err)
	}

	return nil
}
