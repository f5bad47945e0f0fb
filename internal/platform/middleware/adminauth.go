// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package middleware

import (
	"net/http"
	"strings"

	"github.com/gu-cdh/arosenius-api/internal/platform/constants"
	"github.com/gu-cdh/arosenius-api/internal/platform/ctxutil"
	"github.com/gu-cdh/arosenius-api/internal/platform/sec"
)

// AdminGate protects the mutation surface mounted under /admin.
//
// Two credentials are accepted: HTTP Basic with the configured operator
// account, or a Bearer token previously issued by POST /admin/login. Either
// one puts the authenticated subject into the request context so that write
// operations can be attributed in the logs.
func AdminGate(adminUser, adminPasswordHash string, tokens *sec.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			subject, ok := authenticate(request, adminUser, adminPasswordHash, tokens)
			if !ok {
				writer.Header().Set("WWW-Authenticate", `Basic realm="`+constants.AdminRealm+`"`)
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}

			ctx := ctxutil.WithAdmin(request.Context(), subject)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func authenticate(request *http.Request, adminUser, adminPasswordHash string, tokens *sec.TokenService) (string, bool) {

	// 1. HTTP Basic with the operator account
	if username, password, ok := request.BasicAuth(); ok {
		if username == adminUser && sec.CheckPasswordHash(password, adminPasswordHash) {
			return username, true
		}
		return "", false
	}

	// 2. Bearer token issued by /admin/login
	authHeader := request.Header.Get("Authorization")
	if token, found := strings.CutPrefix(authHeader, "Bearer "); found {
		subject, err := tokens.VerifyToken(strings.TrimSpace(token))
		if err != nil {
			return "", false
		}
		return subject, true
	}

	return "", false
}
