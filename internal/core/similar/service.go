// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

/*
Package similar finds documents resembling a reference document.

Similarity is feature overlap: every facet value of the reference and the
dominant color of its images each become one single-predicate filter plan,
the plans run against the active search backend, and candidates are ordered
by how many feature plans matched them. The reference itself is excluded.
*/
package similar

import (
	"context"
	"sort"

	"github.com/gu-cdh/arosenius-api/internal/core/artwork"
	"github.com/gu-cdh/arosenius-api/internal/core/filter"
	"github.com/gu-cdh/arosenius-api/internal/platform/apperr"
	"github.com/gu-cdh/arosenius-api/internal/search"
)

// DefaultLimit is the number of similar documents returned when the client
// does not ask for a specific count.
const DefaultLimit = 25

// Service runs the feature-overlap search.
type Service struct {
	repository artwork.Repository
	executor   search.Executor
}

// NewService constructs the similarity service.
func NewService(repository artwork.Repository, executor search.Executor) *Service {
	return &Service{repository: repository, executor: executor}
}

/*
Similar returns the documents most resembling the referenced one, best
match first.

Returns:
  - []*artwork.ArtworkDocument: Up to limit documents, ordered by the number
    of shared features, ties broken by insert id
  - error: [apperr.NotFound] when the reference does not exist
*/
func (service *Service) Similar(ctx context.Context, publicID string, limit int) ([]*artwork.ArtworkDocument, error) {
	references, err := service.repository.LoadDocuments(ctx, []string{publicID})
	if err != nil {
		return nil, err
	}
	if len(references) == 0 {
		return nil, apperr.NotFound("Document")
	}
	reference := references[0]

	plans, err := featurePlans(reference)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return []*artwork.ArtworkDocument{}, nil
	}

	matched := make(map[int]int)
	for _, plan := range plans {
		matches, err := service.executor.Search(ctx, plan, "")
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if match.InsertID == reference.InsertID {
				continue
			}
			matched[match.InsertID]++
		}
	}

	ranked := make([]int, 0, len(matched))
	for insertID := range matched {
		ranked = append(ranked, insertID)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if matched[ranked[i]] != matched[ranked[j]] {
			return matched[ranked[i]] > matched[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return service.repository.LoadByInsertIDs(ctx, ranked)
}

// featurePlans derives one single-predicate plan per facet value of the
// reference, plus one color plan per dominant image color.
func featurePlans(reference *artwork.ArtworkDocument) ([]filter.Plan, error) {
	var plans []filter.Plan

	facets := []struct {
		facet  string
		values []string
	}{
		{filter.FacetType, reference.Type},
		{filter.FacetGenre, reference.Genre},
		{filter.FacetTag, reference.Tags},
		{filter.FacetPerson, reference.Persons},
		{filter.FacetPlace, reference.Places},
		{filter.FacetSeries, reference.Series},
	}
	for _, facet := range facets {
		for _, value := range facet.values {
			if value == "" {
				continue
			}
			plans = append(plans, filter.FacetPlan(facet.facet, value))
		}
	}

	parts, err := artwork.Disassemble(reference)
	if err != nil {
		return nil, err
	}
	for _, img := range parts.Images {
		if img.Hue == nil {
			continue
		}
		plans = append(plans, filter.ColorPlan(*img.Hue, *img.Saturation, *img.Lightness))
	}

	return plans, nil
}
