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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/nscaledev/uni-crud-e2e/pkg/openapi"
)

// StatusError is returned when the service responds with a non-2xx status.
type StatusError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Message is the service's error message, if one could be decoded.
	Message string
	// TraceID identifies the request in the service logs.
	TraceID string
}

func (e *StatusError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "request failed with status code %d", e.StatusCode)

	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}

	if e.TraceID != "" {
		fmt.Fprintf(&b, " (trace ID: %s)", e.TraceID)
	}

	return b.String()
}

// extractError builds a StatusError from a failed response.  The body is decoded
// leniently as services are not required to return a JSON error.
func extractError(httpResponse *http.Response, body []byte) error {
	err := &StatusError{
		StatusCode: httpResponse.StatusCode,
	}

	var payload openapi.Error

	if jsonErr := json.Unmarshal(body, &payload); jsonErr == nil {
		err.Message = payload.Error
	}

	if httpResponse.Request != nil {
		err.TraceID = extractTraceID(httpResponse.Request.Header.Get(headerTraceParent))
	}

	return err
}

// StatusCode returns the HTTP status carried by the error, if any.
func StatusCode(err error) (int, bool) {
	var statusError *StatusError

	if !errors.As(err, &statusError) {
		return 0, false
	}

	return statusError.StatusCode, true
}

func hasStatus(err error, code int) bool {
	status, ok := StatusCode(err)

	return ok && status == code
}

// IsBadRequest returns true if the service rejected the request as invalid.
func IsBadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

// IsUnauthorized returns true if the request lacked valid credentials.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden returns true if the caller was not allowed to act on the resource.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsNotFound returns true if the resource does not exist.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}
