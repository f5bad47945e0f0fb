// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package facet

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gu-cdh/arosenius-api/internal/core/filter"
	"github.com/gu-cdh/arosenius-api/internal/platform/database/schema"
	"github.com/gu-cdh/arosenius-api/internal/platform/dberr"
)

// repository implements [Repository] on Postgres.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates the Postgres-backed facet repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (repository *repository) ListKeywords(ctx context.Context, keywordType string, byCount bool) ([]Entry, error) {
	kw := schema.ArchiveKeyword
	art := schema.ArchiveArtwork

	order := fmt.Sprintf("k.%s ASC", kw.Name)
	if byCount {
		order = fmt.Sprintf("doc_count DESC, k.%s ASC", kw.Name)
	}

	sql := fmt.Sprintf(`
		SELECT k.%s, count(DISTINCT k.%s) AS doc_count
		FROM %s k
		JOIN %s a ON a.%s = k.%s
		WHERE k.%s = $1 AND a.%s = FALSE
		GROUP BY k.%s
		ORDER BY %s`,
		kw.Name, kw.ArtworkID,
		kw.Table,
		art.Table, art.InsertID, kw.ArtworkID,
		kw.Type, art.Deleted,
		kw.Name,
		order,
	)

	rows, err := repository.pool.Query(ctx, sql, keywordType)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (repository *repository) ListMuseums(ctx context.Context) ([]Entry, error) {
	art := schema.ArchiveArtwork

	sql := fmt.Sprintf(`
		SELECT a.%s, count(*) AS doc_count
		FROM %s a
		WHERE a.%s = FALSE AND a.%s <> ''
		GROUP BY a.%s
		ORDER BY doc_count DESC, a.%s ASC`,
		art.Museum,
		art.Table,
		art.Deleted, art.Museum,
		art.Museum,
		art.Museum,
	)

	rows, err := repository.pool.Query(ctx, sql)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (repository *repository) KeywordCloud(ctx context.Context, minDocCount int) ([]CloudEntry, error) {
	kw := schema.ArchiveKeyword
	art := schema.ArchiveArtwork

	sql := fmt.Sprintf(`
		SELECT k.%s, k.%s, count(DISTINCT k.%s) AS doc_count
		FROM %s k
		JOIN %s a ON a.%s = k.%s
		WHERE k.%s <> $1 AND a.%s = FALSE
		GROUP BY k.%s, k.%s
		HAVING count(DISTINCT k.%s) > $2
		ORDER BY doc_count DESC, k.%s ASC`,
		kw.Type, kw.Name, kw.ArtworkID,
		kw.Table,
		art.Table, art.InsertID, kw.ArtworkID,
		kw.Type, art.Deleted,
		kw.Type, kw.Name,
		kw.ArtworkID,
		kw.Name,
	)

	rows, err := repository.pool.Query(ctx, sql, filter.FacetType, minDocCount)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var entries []CloudEntry
	for rows.Next() {
		var entry CloudEntry
		if err := rows.Scan(&entry.Type, &entry.Value, &entry.DocCount); err != nil {
			return nil, dberr.Wrap(err)
		}
		entries = append(entries, entry)
	}
	return entries, dberr.Wrap(rows.Err())
}

func (repository *repository) ListPageSides(ctx context.Context) ([]Value, error) {
	img := schema.ArchiveImage

	sql := fmt.Sprintf(`
		SELECT DISTINCT i.%s
		FROM %s i
		WHERE i.%s <> ''
		ORDER BY i.%s ASC`,
		img.Side, img.Table, img.Side, img.Side,
	)

	rows, err := repository.pool.Query(ctx, sql)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var values []Value
	for rows.Next() {
		var value Value
		if err := rows.Scan(&value.Value); err != nil {
			return nil, dberr.Wrap(err)
		}
		values = append(values, value)
	}
	return values, dberr.Wrap(rows.Err())
}

func (repository *repository) ListExhibitions(ctx context.Context) ([]ExhibitionRow, error) {
	art := schema.ArchiveArtwork

	sql := fmt.Sprintf(`
		SELECT DISTINCT e->>'location', e->>'year'
		FROM %s a, jsonb_array_elements(a.%s) e
		WHERE a.%s = FALSE`,
		art.Table, art.Exhibitions, art.Deleted,
	)

	rows, err := repository.pool.Query(ctx, sql)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var exhibitions []ExhibitionRow
	for rows.Next() {
		var row ExhibitionRow
		if err := rows.Scan(&row.Location, &row.Year); err != nil {
			return nil, dberr.Wrap(err)
		}
		exhibitions = append(exhibitions, row)
	}
	return exhibitions, dberr.Wrap(rows.Err())
}

func (repository *repository) YearCounts(ctx context.Context, plan filter.Plan) ([]YearCount, error) {
	sql, args := filter.ToYearCountSQL(plan)

	rows, err := repository.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var counts []YearCount
	for rows.Next() {
		var count YearCount
		if err := rows.Scan(&count.Year, &count.DocCount); err != nil {
			return nil, dberr.Wrap(err)
		}
		counts = append(counts, count)
	}
	return counts, dberr.Wrap(rows.Err())
}

func (repository *repository) CompleteKeywords(ctx context.Context, keywordType, prefix string, limit int) ([]Completion, error) {
	kw := schema.ArchiveKeyword
	art := schema.ArchiveArtwork

	begins, follows := wordBeginsArgs(prefix)
	sql := fmt.Sprintf(`
		SELECT k.%s, count(DISTINCT k.%s) AS doc_count
		FROM %s k
		JOIN %s a ON a.%s = k.%s
		WHERE k.%s = $1 AND a.%s = FALSE
		  AND (lower(k.%s) LIKE $2 OR lower(k.%s) LIKE $3)
		GROUP BY k.%s
		ORDER BY doc_count DESC, k.%s ASC
		LIMIT $4`,
		kw.Name, kw.ArtworkID,
		kw.Table,
		art.Table, art.InsertID, kw.ArtworkID,
		kw.Type, art.Deleted,
		kw.Name, kw.Name,
		kw.Name,
		kw.Name,
	)

	rows, err := repository.pool.Query(ctx, sql, keywordType, begins, follows, limit)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	return scanCompletions(rows)
}

func (repository *repository) CompleteTitles(ctx context.Context, prefix string, limit int) ([]Completion, error) {
	return repository.completeArtworkColumn(ctx, schema.ArchiveArtwork.Title, prefix, limit)
}

func (repository *repository) CompleteMuseums(ctx context.Context, prefix string, limit int) ([]Completion, error) {
	return repository.completeArtworkColumn(ctx, schema.ArchiveArtwork.Museum, prefix, limit)
}

func (repository *repository) completeArtworkColumn(ctx context.Context, column, prefix string, limit int) ([]Completion, error) {
	art := schema.ArchiveArtwork

	begins, follows := wordBeginsArgs(prefix)
	sql := fmt.Sprintf(`
		SELECT a.%s, count(*) AS doc_count
		FROM %s a
		WHERE a.%s = FALSE AND a.%s <> ''
		  AND (lower(a.%s) LIKE $1 OR lower(a.%s) LIKE $2)
		GROUP BY a.%s
		ORDER BY doc_count DESC, a.%s ASC
		LIMIT $3`,
		column,
		art.Table,
		art.Deleted, column,
		column, column,
		column,
		column,
	)

	rows, err := repository.pool.Query(ctx, sql, begins, follows, limit)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	return scanCompletions(rows)
}

func (repository *repository) CompleteDocuments(ctx context.Context, prefix string, limit int) ([]DocumentCompletion, error) {
	art := schema.ArchiveArtwork

	begins, follows := wordBeginsArgs(prefix)
	sql := fmt.Sprintf(`
		SELECT a.%s, a.%s
		FROM %s a
		WHERE a.%s = FALSE AND a.%s <> ''
		  AND (lower(a.%s) LIKE $1 OR lower(a.%s) LIKE $2)
		ORDER BY a.%s ASC
		LIMIT $3`,
		art.Title, art.Name,
		art.Table,
		art.Deleted, art.Title,
		art.Title, art.Title,
		art.Title,
	)

	rows, err := repository.pool.Query(ctx, sql, begins, follows, limit)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	var documents []DocumentCompletion
	for rows.Next() {
		var document DocumentCompletion
		if err := rows.Scan(&document.Key, &document.ID); err != nil {
			return nil, dberr.Wrap(err)
		}
		documents = append(documents, document)
	}
	return documents, dberr.Wrap(rows.Err())
}

// wordBeginsArgs builds the two LIKE arguments of a begins-word match: the
// prefix starts the value, or follows a space inside it.
func wordBeginsArgs(prefix string) (string, string) {
	escaped := filter.EscapeLike(prefix)
	return escaped + "%", "% " + escaped + "%"
}

// entryRows is the common scan shape of value/count aggregates.
type entryRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows entryRows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.Value, &entry.DocCount); err != nil {
			return nil, dberr.Wrap(err)
		}
		entries = append(entries, entry)
	}
	return entries, dberr.Wrap(rows.Err())
}

func scanCompletions(rows entryRows) ([]Completion, error) {
	var completions []Completion
	for rows.Next() {
		var completion Completion
		if err := rows.Scan(&completion.Key, &completion.DocCount); err != nil {
			return nil, dberr.Wrap(err)
		}
		completions = append(completions, completion)
	}
	return completions, dberr.Wrap(rows.Err())
}
