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

package fake

import (
	"context"
	"net/http"

	"github.com/nscaledev/uni-crud-e2e/pkg/openapi"
)

func contextWithUser(r *http.Request, user *openapi.User) context.Context {
	return context.WithValue(r.Context(), userKey, user)
}

func userFromContext(r *http.Request) *openapi.User {
	//nolint:forcetypeassert
	return r.Context().Value(userKey).(*openapi.User)
}
