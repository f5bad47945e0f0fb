// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gu-cdh/arosenius-api/pkg/query"
)

func TestValues(t *testing.T) {
	assert.Nil(t, query.Values(""))
	assert.Equal(t, []string{"teckning", "skiss"}, query.Values("teckning;skiss"))
	assert.Equal(t, []string{"PRIV-1", "GKM-2"}, query.Values("PRIV-1; GKM-2"))
	assert.Equal(t, []string{"målning"}, query.Values(" målning ; ;"))
}
