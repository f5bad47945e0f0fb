// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package search

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gu-cdh/arosenius-api/internal/core/filter"
	"github.com/gu-cdh/arosenius-api/internal/platform/dberr"
	"github.com/gu-cdh/arosenius-api/internal/platform/metrics"
)

// facetAggSeparator matches the string_agg separator used by the SQL renderer.
const facetAggSeparator = " | "

// PostgresExecutor runs filter plans against the relational store.
type PostgresExecutor struct {
	pool *pgxpool.Pool
}

// NewPostgresExecutor wires the executor to a connection pool.
func NewPostgresExecutor(pool *pgxpool.Pool) *PostgresExecutor {
	return &PostgresExecutor{pool: pool}
}

// Search implements [Executor].
func (executor *PostgresExecutor) Search(ctx context.Context, plan filter.Plan, sortField string) ([]Match, error) {
	start := time.Now()

	sql, args := filter.ToSQL(plan, sortField)

	rows, err := executor.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var match Match
		var genreNames string

		if err := rows.Scan(&match.InsertID, &match.PublicID, &match.SearchScore, &genreNames); err != nil {
			return nil, dberr.Wrap(err)
		}
		if genreNames != "" {
			match.Genres = strings.Split(genreNames, facetAggSeparator)
		}

		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err)
	}

	metrics.ObserveSearch("postgres", time.Since(start), len(matches))

	return matches, nil
}
