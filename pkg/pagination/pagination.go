// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// Search results are ranked in memory before paging, so paging is a slice
// operation over the full ordered match list rather than a SQL OFFSET.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultCount is the number of documents per page if not specified.
	DefaultCount = 100
	// ShowAllCap is the upper bound applied when a client requests every match.
	ShowAllCap = 10000
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and count from a request's query string.
type Params struct {
	Page    int
	Count   int
	ShowAll bool
}

// Bounds returns the half-open slice interval [from, to) for a ranked match
// list of the given length.
func (p Params) Bounds(total int) (int, int) {
	count := p.Count
	if p.ShowAll {
		count = ShowAllCap
	}

	from := (p.Page - 1) * count
	if from > total {
		from = total
	}

	to := from + count
	if to > total {
		to = total
	}

	return from, to
}

// FromRequest parses "page", "count" and "showAll" query parameters.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultCount], or [ShowAllCap].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	count := parseIntParam(r, "count", DefaultCount)

	if page < 1 {
		page = DefaultPage
	}

	if count < 1 || count > ShowAllCap {
		count = DefaultCount
	}

	return Params{
		Page:    page,
		Count:   count,
		ShowAll: r.URL.Query().Get("showAll") == "true",
	}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
