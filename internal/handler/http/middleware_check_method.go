// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router.
//
// A known path requested with an unsupported method is answered exactly like
// an unknown path: HTTP 404 with the JSON error envelope. Callers cannot tell
// which routes exist by probing methods.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeErrorMessage(w, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path), http.StatusNotFound)
}
