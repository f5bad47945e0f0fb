// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

/*
Package search executes compiled filter plans against one of two
interchangeable backends: the relational store (Postgres) or the RediSearch
document index. Exactly one backend is active per process, selected by
configuration.

Executors return the full matched list; ranking and paging happen afterwards
in the service layer, so both backends only need to agree on the Match shape.
*/
package search

import (
	"context"

	"github.com/gu-cdh/arosenius-api/internal/core/filter"
)

// Match is one matched document, carrying everything the ranking policy
// needs without loading the full document.
type Match struct {
	InsertID    int
	PublicID    string
	SearchScore float64
	Genres      []string
}

// Executor runs a compiled plan and returns every match.
//
// sortField is a whitelisted deterministic sort column ("" means the caller
// ranks the matches itself).
type Executor interface {
	Search(ctx context.Context, plan filter.Plan, sortField string) ([]Match, error)
}
