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

// Package api provides integration test utilities for the rooms API.
//
// # Separate Client Implementation
//
// This package intentionally maintains a separate HTTP client implementation
// (APIClient) instead of using the generated OpenAPI client.  Any legitimate
// change to the OpenAPI document must have a compensating change in this client,
// making API evolution explicit and reviewable.  It also gives the suites
// direct access to status codes, headers and raw response bodies.
//
// # Targets
//
// The suites run against API_BASE_URL when set, otherwise against an
// in-process fake of the service.
package api
