// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A request whose method is not registered for the exactly matching route
// pattern gets 404 Not Found instead of chi's 405, so a node does not
// advertise which methods its read-only routes accept. Requests whose method
// is registered are passed back to the router.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !routeHandlesMethod(router.Routes(), r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func routeHandlesMethod(routes []chi.Route, path, method string) bool {
	for _, route := range routes {
		if route.Pattern == path {
			_, ok := route.Handlers[method]
			return ok
		}
	}
	return false
}
