// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package similar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gu-cdh/arosenius-api/internal/core/artwork"
	"github.com/gu-cdh/arosenius-api/internal/core/filter"
	"github.com/gu-cdh/arosenius-api/internal/platform/apperr"
	"github.com/gu-cdh/arosenius-api/internal/search"
)

// featureExecutor answers each single-feature plan from a value → matches
// table keyed by the plan's first predicate value.
type featureExecutor struct {
	matchesByValue map[string][]int
}

func (executor *featureExecutor) Search(_ context.Context, plan filter.Plan, _ string) ([]search.Match, error) {
	if len(plan.Groups) == 0 || len(plan.Groups[0].Preds) == 0 {
		return nil, nil
	}
	pred := plan.Groups[0].Preds[0]
	if len(pred.Values) == 0 {
		return nil, nil
	}

	var matches []search.Match
	for _, insertID := range executor.matchesByValue[pred.Values[0]] {
		matches = append(matches, search.Match{InsertID: insertID})
	}
	return matches, nil
}

type stubRepository struct {
	artwork.Repository

	byPublicID map[string]*artwork.ArtworkDocument
	byInsertID map[int]*artwork.ArtworkDocument
}

func (repository *stubRepository) LoadDocuments(_ context.Context, publicIDs []string) ([]*artwork.ArtworkDocument, error) {
	var found []*artwork.ArtworkDocument
	for _, publicID := range publicIDs {
		if document, ok := repository.byPublicID[publicID]; ok {
			found = append(found, document)
		}
	}
	return found, nil
}

func (repository *stubRepository) LoadByInsertIDs(_ context.Context, insertIDs []int) ([]*artwork.ArtworkDocument, error) {
	var found []*artwork.ArtworkDocument
	for _, insertID := range insertIDs {
		if document, ok := repository.byInsertID[insertID]; ok {
			found = append(found, document)
		}
	}
	return found, nil
}

func TestSimilar_OrdersByFeatureOverlap(t *testing.T) {
	reference := &artwork.ArtworkDocument{
		InsertID: 1,
		ID:       "ref",
		Tags:     []string{"trädgård", "barn"},
		Genre:    []string{"Målning"},
	}
	two := &artwork.ArtworkDocument{InsertID: 2, ID: "b"}
	three := &artwork.ArtworkDocument{InsertID: 3, ID: "c"}

	repository := &stubRepository{
		byPublicID: map[string]*artwork.ArtworkDocument{"ref": reference},
		byInsertID: map[int]*artwork.ArtworkDocument{2: two, 3: three},
	}
	executor := &featureExecutor{matchesByValue: map[string][]int{
		"trädgård": {1, 2, 3},
		"barn":     {1, 3},
		"målning":  {3},
	}}
	service := NewService(repository, executor)

	documents, err := service.Similar(context.Background(), "ref", 10)
	require.NoError(t, err)

	// Three features match document 3, one matches document 2; the
	// reference never appears in its own results.
	require.Len(t, documents, 2)
	assert.Equal(t, 3, documents[0].InsertID)
	assert.Equal(t, 2, documents[1].InsertID)
}

func TestSimilar_LimitCapsResults(t *testing.T) {
	reference := &artwork.ArtworkDocument{InsertID: 1, ID: "ref", Tags: []string{"akvarell"}}
	repository := &stubRepository{
		byPublicID: map[string]*artwork.ArtworkDocument{"ref": reference},
		byInsertID: map[int]*artwork.ArtworkDocument{
			2: {InsertID: 2}, 3: {InsertID: 3}, 4: {InsertID: 4},
		},
	}
	executor := &featureExecutor{matchesByValue: map[string][]int{
		"akvarell": {2, 3, 4},
	}}
	service := NewService(repository, executor)

	documents, err := service.Similar(context.Background(), "ref", 2)
	require.NoError(t, err)

	assert.Len(t, documents, 2)
}

func TestSimilar_UnknownReferenceIsNotFound(t *testing.T) {
	service := NewService(&stubRepository{}, &featureExecutor{})

	_, err := service.Similar(context.Background(), "nope", 10)

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestSimilar_NoFeaturesMeansNoResults(t *testing.T) {
	reference := &artwork.ArtworkDocument{InsertID: 1, ID: "ref"}
	repository := &stubRepository{
		byPublicID: map[string]*artwork.ArtworkDocument{"ref": reference},
	}
	service := NewService(repository, &featureExecutor{})

	documents, err := service.Similar(context.Background(), "ref", 10)
	require.NoError(t, err)
	assert.Empty(t, documents)
}
