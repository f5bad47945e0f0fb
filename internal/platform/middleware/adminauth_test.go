// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gu-cdh/arosenius-api/internal/platform/ctxutil"
	"github.com/gu-cdh/arosenius-api/internal/platform/middleware"
	"github.com/gu-cdh/arosenius-api/internal/platform/sec"
)

func newGate(t *testing.T) (func(http.Handler) http.Handler, *sec.TokenService) {
	t.Helper()

	hash, err := sec.HashPassword("letmein")
	require.NoError(t, err)

	tokens, err := sec.NewTokenService("test-secret", "test-issuer")
	require.NoError(t, err)

	return middleware.AdminGate("curator", hash, tokens), tokens
}

func echoAdmin() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(ctxutil.GetAdmin(request.Context())))
	})
}

func TestAdminGate_BasicAuth(t *testing.T) {
	gate, _ := newGate(t)
	handler := gate(echoAdmin())

	request := httptest.NewRequest(http.MethodGet, "/admin/documents", nil)
	request.SetBasicAuth("curator", "letmein")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "curator", recorder.Body.String())
}

func TestAdminGate_BasicAuthWrongPassword(t *testing.T) {
	gate, _ := newGate(t)
	handler := gate(echoAdmin())

	request := httptest.NewRequest(http.MethodGet, "/admin/documents", nil)
	request.SetBasicAuth("curator", "wrong")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Header().Get("WWW-Authenticate"), "Basic realm=")
}

func TestAdminGate_BearerToken(t *testing.T) {
	gate, tokens := newGate(t)
	handler := gate(echoAdmin())

	token, err := tokens.GenerateToken("curator", time.Hour)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/admin/documents", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "curator", recorder.Body.String())
}

func TestAdminGate_NoCredentials(t *testing.T) {
	gate, _ := newGate(t)
	handler := gate(echoAdmin())

	request := httptest.NewRequest(http.MethodGet, "/admin/documents", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
