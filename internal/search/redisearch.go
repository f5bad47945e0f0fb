// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gu-cdh/arosenius-api/internal/core/filter"
	"github.com/gu-cdh/arosenius-api/internal/platform/metrics"
	"github.com/gu-cdh/arosenius-api/pkg/pagination"
)

// Document key layout in the RediSearch backend.
const (
	docKeyPrefix = "artwork:"
	// TagSeparator joins multi-valued TAG fields in the indexed hashes.
	TagSeparator = "|"
)

// RediSearchExecutor runs filter plans against a flat document index.
type RediSearchExecutor struct {
	client *redis.Client
	index  string
}

// NewRediSearchExecutor wires the executor to a Redis client and index name.
func NewRediSearchExecutor(client *redis.Client, index string) *RediSearchExecutor {
	return &RediSearchExecutor{client: client, index: index}
}

// EnsureIndex creates the search index if it does not exist yet.
//
// Facet types are indexed twice: a TAG field under the facet name for exact
// filtering, and a TEXT field under kw_ for weighted relevance, with the
// weights taken from the shared score table.
func (executor *RediSearchExecutor) EnsureIndex(ctx context.Context) error {
	schema := []*redis.FieldSchema{
		{FieldName: "insert_id", FieldType: redis.SearchFieldTypeNumeric, Sortable: true},
		{FieldName: "name", FieldType: redis.SearchFieldTypeTag},
		{FieldName: "deleted", FieldType: redis.SearchFieldTypeTag},
		{FieldName: "published", FieldType: redis.SearchFieldTypeTag},
		{FieldName: "item_date_string", FieldType: redis.SearchFieldTypeTag, Sortable: true},
		{FieldName: "title", FieldType: redis.SearchFieldTypeText, Sortable: true},
		{FieldName: "bundle", FieldType: redis.SearchFieldTypeText, NoStem: true},
		{FieldName: "genre", FieldType: redis.SearchFieldTypeTag, Separator: TagSeparator},
		{FieldName: "color_hue", FieldType: redis.SearchFieldTypeNumeric},
		{FieldName: "color_saturation", FieldType: redis.SearchFieldTypeNumeric},
		{FieldName: "color_lightness", FieldType: redis.SearchFieldTypeNumeric},
	}

	for _, facet := range filter.AllFacets {
		if facet == filter.FacetGenre {
			continue // already declared above, sortable for facet listings
		}
		schema = append(schema, &redis.FieldSchema{
			FieldName: facet,
			FieldType: redis.SearchFieldTypeTag,
			Separator: TagSeparator,
		})
	}

	for _, scoreField := range filter.ScoreFields {
		name := scoreField.Column
		if scoreField.Facet != "" {
			name = filter.SearchTextFieldPrefix + scoreField.Facet
		}
		if name == "title" {
			continue // declared above
		}
		schema = append(schema, &redis.FieldSchema{
			FieldName: name,
			FieldType: redis.SearchFieldTypeText,
			Weight:    scoreField.Weight,
		})
	}

	options := &redis.FTCreateOptions{
		OnHash: true,
		Prefix: []any{docKeyPrefix},
	}

	err := executor.client.FTCreate(ctx, executor.index, options, schema...).Err()
	if err != nil && strings.Contains(err.Error(), "Index already exists") {
		return nil
	}
	if err != nil {
		return fmt.Errorf("search: create index %s: %w", executor.index, err)
	}
	return nil
}

// Search implements [Executor].
func (executor *RediSearchExecutor) Search(ctx context.Context, plan filter.Plan, sortField string) ([]Match, error) {
	start := time.Now()

	query := filter.ToSearch(plan)

	options := &redis.FTSearchOptions{
		WithScores:  true,
		LimitOffset: 0,
		Limit:       pagination.ShowAllCap,
		Return: []redis.FTSearchReturn{
			{FieldName: "insert_id"},
			{FieldName: "name"},
			{FieldName: "genre"},
		},
	}
	if column, ok := filter.SortColumn(sortField); ok {
		options.SortBy = []redis.FTSearchSortBy{{FieldName: column, Asc: true}}
	} else if sortField == filter.SortTitleNatural {
		// Length-aware ordering is not expressible in FT.SEARCH; plain
		// title order is the closest the index offers.
		options.SortBy = []redis.FTSearchSortBy{{FieldName: "title", Asc: true}}
	}

	result, err := executor.client.FTSearchWithArgs(ctx, executor.index, query, options).Result()
	if err != nil {
		return nil, fmt.Errorf("search: query failed: %w", err)
	}

	matches := make([]Match, 0, len(result.Docs))
	for _, doc := range result.Docs {
		match := Match{PublicID: doc.Fields["name"]}

		if id, err := strconv.Atoi(doc.Fields["insert_id"]); err == nil {
			match.InsertID = id
		}
		if doc.Score != nil {
			match.SearchScore = *doc.Score
		}
		if genres := doc.Fields["genre"]; genres != "" {
			match.Genres = strings.Split(genres, TagSeparator)
		}

		matches = append(matches, match)
	}

	metrics.ObserveSearch("redisearch", time.Since(start), len(matches))

	return matches, nil
}

// IndexDocument mirrors one document into the search index. The caller
// provides the flattened field map; multi-valued fields must already be
// joined with [TagSeparator].
func (executor *RediSearchExecutor) IndexDocument(ctx context.Context, insertID int, fields map[string]any) error {
	key := docKeyPrefix + strconv.Itoa(insertID)
	if err := executor.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("search: index document %d: %w", insertID, err)
	}
	return nil
}

// RemoveDocument drops one document from the search index.
func (executor *RediSearchExecutor) RemoveDocument(ctx context.Context, insertID int) error {
	key := docKeyPrefix + strconv.Itoa(insertID)
	if err := executor.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("search: remove document %d: %w", insertID, err)
	}
	return nil
}
