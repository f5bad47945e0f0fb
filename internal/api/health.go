// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package api

import (
	"context"
	"net/http"

	"github.com/gu-cdh/arosenius-api/internal/platform/constants"
	"github.com/gu-cdh/arosenius-api/internal/platform/respond"
)

// ReadinessChecks maps dependency names to their ping functions. A check
// map is built in main for whichever backends the instance actually uses.
type ReadinessChecks map[string]func(context.Context) error

// healthHandler answers liveness probes. It carries no dependency state:
// a running process is a live process.
func healthHandler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		respond.OK(writer, map[string]string{
			"status":  "ok",
			"version": constants.AppVersion,
		})
	}
}

// readyHandler answers readiness probes by pinging every registered
// dependency. Any failure flips the whole instance to 503.
func readyHandler(checks ReadinessChecks) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		status := http.StatusOK
		results := make(map[string]string, len(checks))

		for name, check := range checks {
			if err := check(request.Context()); err != nil {
				status = http.StatusServiceUnavailable
				results[name] = err.Error()
				continue
			}
			results[name] = "ok"
		}

		respond.JSON(writer, status, results)
	}
}
