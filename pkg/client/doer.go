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
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/nscaledev/uni-crud-e2e/pkg/openapi"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// ErrSchemaViolation is raised when a response does not match the OpenAPI document.
var ErrSchemaViolation = errors.New("response violates api schema")

// loggingDoer logs requests with their trace context.
type loggingDoer struct {
	doer openapi.HttpRequestDoer
}

// NewLoggingDoer logs every request made through doer.
func NewLoggingDoer(doer openapi.HttpRequestDoer) openapi.HttpRequestDoer {
	return &loggingDoer{
		doer: doer,
	}
}

func (d *loggingDoer) Do(req *http.Request) (*http.Response, error) {
	logger := log.FromContext(req.Context())

	traceParent := req.Header.Get(headerTraceParent)

	start := time.Now()
	resp, err := d.doer.Do(req)
	duration := time.Since(start)

	if err != nil {
		logger.Error(err, "http request failed", "method", req.Method, "path", req.URL.Path, "duration", duration, "traceID", extractTraceID(traceParent))

		return nil, err
	}

	logger.Info("http request", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode, "duration", duration, "traceID", extractTraceID(traceParent))

	return resp, nil
}

// validatingDoer checks successful responses against the OpenAPI document.
// Error responses are not validated, services are free to shape those.
type validatingDoer struct {
	doer   openapi.HttpRequestDoer
	router routers.Router
}

// NewValidatingDoer validates responses received via doer from the service at baseURL.
func NewValidatingDoer(doer openapi.HttpRequestDoer, baseURL string) (openapi.HttpRequestDoer, error) {
	doc, err := openapi.GetSwagger()
	if err != nil {
		return nil, err
	}

	doc.Servers = openapi3.Servers{
		&openapi3.Server{
			URL: baseURL,
		},
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("creating openapi router: %w", err)
	}

	return &validatingDoer{
		doer:   doer,
		router: router,
	}, nil
}

func (d *validatingDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.doer.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, nil
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))

	route, pathParams, err := d.router.FindRoute(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrSchemaViolation, req.Method, req.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(body)

	if err := openapi3filter.ValidateResponse(req.Context(), input); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrSchemaViolation, req.Method, req.URL.Path, err)
	}

	return resp, nil
}
