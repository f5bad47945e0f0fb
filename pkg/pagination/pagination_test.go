// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gu-cdh/arosenius-api/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want pagination.Params
	}{
		{
			name: "defaults",
			url:  "/documents",
			want: pagination.Params{Page: 1, Count: 100},
		},
		{
			name: "explicit page and count",
			url:  "/documents?page=3&count=25",
			want: pagination.Params{Page: 3, Count: 25},
		},
		{
			name: "show all",
			url:  "/documents?showAll=true",
			want: pagination.Params{Page: 1, Count: 100, ShowAll: true},
		},
		{
			name: "negative page clamps to first",
			url:  "/documents?page=-2",
			want: pagination.Params{Page: 1, Count: 100},
		},
		{
			name: "excessive count clamps to default",
			url:  "/documents?count=99999",
			want: pagination.Params{Page: 1, Count: 100},
		},
		{
			name: "garbage values fall back",
			url:  "/documents?page=abc&count=xyz",
			want: pagination.Params{Page: 1, Count: 100},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tc.url, nil)
			assert.Equal(t, tc.want, pagination.FromRequest(request))
		})
	}
}

func TestBounds(t *testing.T) {
	params := pagination.Params{Page: 2, Count: 10}

	from, to := params.Bounds(25)
	assert.Equal(t, 10, from)
	assert.Equal(t, 20, to)

	// Partial last page
	from, to = params.Bounds(15)
	assert.Equal(t, 10, from)
	assert.Equal(t, 15, to)

	// Page beyond the result set yields an empty window
	from, to = params.Bounds(5)
	assert.Equal(t, 5, from)
	assert.Equal(t, 5, to)
}

func TestBounds_ShowAllCapped(t *testing.T) {
	params := pagination.Params{Page: 1, Count: 100, ShowAll: true}

	from, to := params.Bounds(20000)
	assert.Equal(t, 0, from)
	assert.Equal(t, pagination.ShowAllCap, to)
}
