// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-wellness/internal/utils"
)

// notFound is the JSON 404 for every path the router does not serve.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// A known path asked for with a method it lacks gets the same 404 as an
// unknown path, so the API does not reveal which methods a route has.
//
// The handler may also be called directly; a request the router can serve
// is then passed back to it.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			notFound(w, r)
			return
		}
		router.ServeHTTP(w, r)
	}
}
