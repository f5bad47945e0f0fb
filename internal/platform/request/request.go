// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gu-cdh/arosenius-api/internal/platform/apperr"
	"github.com/gu-cdh/arosenius-api/internal/platform/ctxutil"
	"github.com/gu-cdh/arosenius-api/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
RequiredAdmin ensures the request passed the admin gate and returns the
authenticated subject.

Returns:
  - string: Admin subject (username)
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredAdmin(request *http.Request) (string, error) {

	// Get the authenticated admin subject
	admin := ctxutil.GetAdmin(request.Context())

	// If the request did not pass the admin gate, return an error
	if admin == "" {
		return "", apperr.Unauthorized("Authentication required")
	}

	return admin, nil
}
