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

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nscaledev/uni-crud-e2e/pkg/constants"
	"github.com/nscaledev/uni-crud-e2e/pkg/openapi"
)

var (
	// ErrNoResponse is raised when the generated client hands back nothing to inspect.
	ErrNoResponse = errors.New("no http response")

	// ErrUnexpectedBody is raised when a successful response body cannot be decoded.
	ErrUnexpectedBody = errors.New("unexpected response body")
)

// Response is a successful API response.
type Response[T any] struct {
	// StatusCode is the HTTP status returned by the service.
	StatusCode int
	// Header is the response header.
	Header http.Header
	// Body is the decoded response payload.
	Body T
}

// Client wraps the generated client with typed results, bearer credentials
// and trace context propagation.  Any 2xx status is a success, anything else
// is returned as a *StatusError.
type Client struct {
	client openapi.ClientWithResponsesInterface
	token  string
}

// New returns a new unauthenticated client.
func New(client openapi.ClientWithResponsesInterface) *Client {
	return &Client{
		client: client,
	}
}

// WithToken returns a copy of the client that presents the given bearer credential.
func (c *Client) WithToken(token string) *Client {
	copied := *c
	copied.token = token

	return &copied
}

func (c *Client) editors() []openapi.RequestEditorFn {
	editors := []openapi.RequestEditorFn{
		userAgent,
		traceContext,
	}

	if c.token != "" {
		editors = append(editors, bearer(c.token))
	}

	return editors
}

// decode converts a generated response into a typed one.  The generated client only
// decodes the documented status codes, so other 2xx codes fall back to the raw body.
func decode[T any](httpResponse *http.Response, body []byte, typed *T) (*Response[T], error) {
	if httpResponse == nil {
		return nil, ErrNoResponse
	}

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		return nil, extractError(httpResponse, body)
	}

	result := &Response[T]{
		StatusCode: httpResponse.StatusCode,
		Header:     httpResponse.Header,
	}

	if typed != nil {
		result.Body = *typed

		return result, nil
	}

	if len(body) == 0 {
		return result, nil
	}

	if err := json.Unmarshal(body, &result.Body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedBody, err)
	}

	return result, nil
}

// Health returns the service health.
func (c *Client) Health(ctx context.Context) (*Response[openapi.HealthStatus], error) {
	resp, err := c.client.GetHealthStatusWithResponse(ctx, c.editors()...)
	if err != nil {
		return nil, fmt.Errorf("getting health status: %w", err)
	}

	return decode(resp.HTTPResponse, resp.Body, resp.JSON200)
}

// CreateGuestUser creates an anonymous identity, the credential is returned
// in the response's Authorization header, see Credential.
func (c *Client) CreateGuestUser(ctx context.Context) (*Response[openapi.User], error) {
	resp, err := c.client.CreateGuestUserWithResponse(ctx, c.editors()...)
	if err != nil {
		return nil, fmt.Errorf("creating guest user: %w", err)
	}

	return decode(resp.HTTPResponse, resp.Body, resp.JSON200)
}

// GetCurrentUser returns the identity bound to the client's credential.
func (c *Client) GetCurrentUser(ctx context.Context) (*Response[openapi.User], error) {
	resp, err := c.client.GetCurrentUserWithResponse(ctx, c.editors()...)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return decode(resp.HTTPResponse, resp.Body, resp.JSON200)
}

// ListRooms lists all rooms.
func (c *Client) ListRooms(ctx context.Context) (*Response[openapi.Rooms], error) {
	resp, err := c.client.GetAllRoomsWithResponse(ctx, c.editors()...)
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}

	return decode(resp.HTTPResponse, resp.Body, resp.JSON200)
}

// ListMyRooms lists rooms owned by the client's identity.
func (c *Client) ListMyRooms(ctx context.Context) (*Response[openapi.Rooms], error) {
	resp, err := c.client.GetMyRoomsWithResponse(ctx, c.editors()...)
	if err != nil {
		return nil, fmt.Errorf("listing my rooms: %w", err)
	}

	return decode(resp.HTTPResponse, resp.Body, resp.JSON200)
}

// CreateRoom creates a room owned by the client's identity.
func (c *Client) CreateRoom(ctx context.Context, request openapi.RoomCreate) (*Response[openapi.Room], error) {
	resp, err := c.client.CreateRoomWithResponse(ctx, request, c.editors()...)
	if err != nil {
		return nil, fmt.Errorf("creating room: %w", err)
	}

	return decode(resp.HTTPResponse, resp.Body, resp.JSON201)
}

// GetRoom reads a room.
func (c *Client) GetRoom(ctx context.Context, id int64) (*Response[openapi.Room], error) {
	resp, err := c.client.GetRoomByIdWithResponse(ctx, id, c.editors()...)
	if err != nil {
		return nil, fmt.Errorf("getting room %d: %w", id, err)
	}

	return decode(resp.HTTPResponse, resp.Body, resp.JSON200)
}

// UpdateRoom replaces a room's name and description.
func (c *Client) UpdateRoom(ctx context.Context, id int64, request openapi.RoomUpdate) (*Response[openapi.Room], error) {
	resp, err := c.client.UpdateRoomWithResponse(ctx, id, request, c.editors()...)
	if err != nil {
		return nil, fmt.Errorf("updating room %d: %w", id, err)
	}

	return decode(resp.HTTPResponse, resp.Body, resp.JSON200)
}

// DeleteRoom deletes a room.
func (c *Client) DeleteRoom(ctx context.Context, id int64) (*Response[struct{}], error) {
	resp, err := c.client.DeleteRoomWithResponse(ctx, id, c.editors()...)
	if err != nil {
		return nil, fmt.Errorf("deleting room %d: %w", id, err)
	}

	// Deletion has no payload.
	return decode(resp.HTTPResponse, resp.Body, &struct{}{})
}

// Credential extracts the bearer token from an Authorization header.
func Credential(header http.Header) (string, error) {
	var token openapi.BearerToken

	if err := token.UnmarshalText([]byte(header.Get("Authorization"))); err != nil {
		return "", err
	}

	return token.Value, nil
}

func userAgent(_ context.Context, req *http.Request) error {
	req.Header.Set("User-Agent", constants.VersionString())

	return nil
}

func bearer(token string) openapi.RequestEditorFn {
	return func(_ context.Context, req *http.Request) error {
		value, err := openapi.BearerToken{Value: token}.MarshalText()
		if err != nil {
			return err
		}

		req.Header.Set("Authorization", string(value))

		return nil
	}
}
