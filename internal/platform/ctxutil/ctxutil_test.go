// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gu-cdh/arosenius-api/internal/platform/ctxutil"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

func TestRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", ctxutil.GetRequestID(context.Background()))
}

func TestLogger_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(context.Background()))
}

func TestLogger_RoundTrip(t *testing.T) {
	logger := slog.Default().With(slog.String("test", "yes"))
	ctx := ctxutil.WithLogger(context.Background(), logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

func TestAdmin_RoundTrip(t *testing.T) {
	ctx := ctxutil.WithAdmin(context.Background(), "admin")
	assert.Equal(t, "admin", ctxutil.GetAdmin(ctx))
	assert.Equal(t, "", ctxutil.GetAdmin(context.Background()))
}
