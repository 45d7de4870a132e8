/**
 * Copyright 2023 Comcast Cable Communications Management, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package headerhttp

import (
	"net/http"

	"github.com/xmidt-org/httpheader"
)

// Middleware is the underlying type for decorators.
type Middleware[T any] interface {
	~func(T) T
}

// ApplyMiddleware handles decorating a target type T.  Middleware
// executes in the order declared to this function.
func ApplyMiddleware[T any, M Middleware[T]](t T, m ...M) T {
	for i := len(m) - 1; i >= 0; i-- {
		t = m[i](t)
	}

	return t
}

// validate builds server middleware around a check of the request headers
func validate(check func(httpheader.Source) error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			if err := check(httpheader.FromRequest(request)); err != nil {
				http.Error(response, err.Error(), http.StatusBadRequest)
				return
			}

			next.ServeHTTP(response, request)
		})
	}
}

// Require is server middleware that rejects any request whose header is
// absent or malformed with http.StatusBadRequest.  The returned function
// can be used directly as an alice.Constructor or a mux.MiddlewareFunc.
func Require[T any](h httpheader.Header[T]) func(http.Handler) http.Handler {
	return validate(func(src httpheader.Source) error {
		_, err := h.Parse(src)
		return err
	})
}

// RequireIfPresent is like Require, except that an absent header is allowed.
// Only malformed headers are rejected.
func RequireIfPresent[T any](h httpheader.Header[T]) func(http.Handler) http.Handler {
	return validate(func(src httpheader.Source) error {
		_, _, err := h.ParseIfPresent(src)
		return err
	})
}

// RequireSet is server middleware that rejects any request whose headers
// do not satisfy the given Set.
func RequireSet(set httpheader.Set) func(http.Handler) http.Handler {
	return validate(func(src httpheader.Source) error {
		_, err := set.Extract(src)
		return err
	})
}
