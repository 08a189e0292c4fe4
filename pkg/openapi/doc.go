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

//go:generate go tool oapi-codegen -config types.config.yaml server.spec.yaml
//go:generate go tool oapi-codegen -config client.config.yaml server.spec.yaml
//go:generate go tool mockgen -destination=mock/interfaces.go -package=mock github.com/nscaledev/uni-crud-e2e/pkg/openapi ClientWithResponsesInterface
package openapi
