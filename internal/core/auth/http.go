// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

// Package auth exposes the admin session endpoint. Authentication itself
// happens in the admin gate middleware; this handler only turns a passed
// gate into a bearer token.
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gu-cdh/arosenius-api/internal/platform/constants"
	requestutil "github.com/gu-cdh/arosenius-api/internal/platform/request"
	"github.com/gu-cdh/arosenius-api/internal/platform/respond"
	"github.com/gu-cdh/arosenius-api/internal/platform/sec"
)

// Handler issues admin session tokens.
type Handler struct {
	tokens *sec.TokenService
}

// NewHandler wires the login route to the token service.
func NewHandler(tokens *sec.TokenService) *Handler {
	return &Handler{tokens: tokens}
}

// MountAdmin registers the login route on the gated router.
func (handler *Handler) MountAdmin(router chi.Router) {
	router.Get("/login", handler.Login)
}

// loginResponse keeps the legacy "login" marker the admin frontend checks,
// alongside the issued token.
type loginResponse struct {
	Login string `json:"login"`
	Token string `json:"token"`
}

// Login handles GET /admin/login. Reaching it means the gate accepted the
// request's credentials; the response carries a short-lived bearer token so
// the frontend can stop resending Basic credentials.
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	subject, err := requestutil.RequiredAdmin(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.tokens.GenerateToken(subject, constants.AdminTokenTTL)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, loginResponse{Login: "success", Token: token})
}
