// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package artwork

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gu-cdh/arosenius-api/internal/core/filter"
	"github.com/gu-cdh/arosenius-api/internal/platform/apperr"
	"github.com/gu-cdh/arosenius-api/internal/search"
	"github.com/gu-cdh/arosenius-api/pkg/pagination"
)

// fakeExecutor returns canned matches and records the sort field it was
// asked for.
type fakeExecutor struct {
	matches  []search.Match
	sortSeen string
}

func (executor *fakeExecutor) Search(_ context.Context, _ filter.Plan, sortField string) ([]search.Match, error) {
	executor.sortSeen = sortField
	result := make([]search.Match, len(executor.matches))
	copy(result, executor.matches)
	return result, nil
}

// fakeRepository serves documents from a map and records destructive calls.
type fakeRepository struct {
	documents      map[int]*ArtworkDocument
	updatedImages  map[int][]ImageRow
	hardDeleted    []int
	insertedID     int
}

func newFakeRepository(documents ...*ArtworkDocument) *fakeRepository {
	repository := &fakeRepository{
		documents:     make(map[int]*ArtworkDocument),
		updatedImages: make(map[int][]ImageRow),
	}
	for _, document := range documents {
		repository.documents[document.InsertID] = document
	}
	return repository
}

func (repository *fakeRepository) LoadDocuments(_ context.Context, publicIDs []string) ([]*ArtworkDocument, error) {
	var found []*ArtworkDocument
	for _, publicID := range publicIDs {
		for _, document := range repository.documents {
			if document.ID == publicID {
				found = append(found, document)
			}
		}
	}
	return found, nil
}

func (repository *fakeRepository) LoadByInsertIDs(_ context.Context, insertIDs []int) ([]*ArtworkDocument, error) {
	var found []*ArtworkDocument
	for _, insertID := range insertIDs {
		if document, ok := repository.documents[insertID]; ok {
			found = append(found, document)
		}
	}
	return found, nil
}

func (repository *fakeRepository) Insert(_ context.Context, document *ArtworkDocument) error {
	repository.insertedID = document.InsertID
	repository.documents[document.InsertID] = document
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, document *ArtworkDocument) error {
	repository.documents[document.InsertID] = document
	return nil
}

func (repository *fakeRepository) HardDelete(_ context.Context, insertIDs []int) error {
	repository.hardDeleted = append(repository.hardDeleted, insertIDs...)
	for _, insertID := range insertIDs {
		delete(repository.documents, insertID)
	}
	return nil
}

func (repository *fakeRepository) EnsurePerson(context.Context, *Person) (*int, error) {
	return nil, nil
}

func (repository *fakeRepository) ListImages(context.Context, int) ([]ImageRow, error) {
	return nil, nil
}

func (repository *fakeRepository) UpdateImages(_ context.Context, artworkID int, desired []ImageRow) error {
	repository.updatedImages[artworkID] = desired
	return nil
}

func (repository *fakeRepository) UpdateKeywords(context.Context, int, string, []string) error {
	return nil
}

func (repository *fakeRepository) NextNeighbor(context.Context, int) (*Neighbor, error) {
	return nil, nil
}

func (repository *fakeRepository) PrevNeighbor(context.Context, int) (*Neighbor, error) {
	return nil, nil
}

func (repository *fakeRepository) HighestInsertID(context.Context) (int, error) {
	return 0, nil
}

func testDocument(insertID int, publicID string) *ArtworkDocument {
	return &ArtworkDocument{InsertID: insertID, ID: publicID, Title: publicID}
}

func TestServiceSearch_DeterministicSortSkipsRanking(t *testing.T) {
	executor := &fakeExecutor{matches: []search.Match{
		{InsertID: 1}, {InsertID: 2}, {InsertID: 3},
	}}
	repository := newFakeRepository(
		testDocument(1, "a"), testDocument(2, "b"), testDocument(3, "c"),
	)
	service := NewService(repository, executor, nil, nil)

	result, err := service.Search(context.Background(), filter.Params{}, SearchOptions{
		Sort: "insert_id",
		Page: pagination.Params{Page: 1, Count: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, "insert_id", executor.sortSeen)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Documents, 2)
	assert.Equal(t, 1, result.Documents[0].InsertID)
	assert.Equal(t, 2, result.Documents[1].InsertID)
}

func TestServiceSearch_TitleSortUnderSeriesFilterBecomesNatural(t *testing.T) {
	executor := &fakeExecutor{}
	service := NewService(newFakeRepository(), executor, nil, nil)

	_, err := service.Search(context.Background(),
		filter.Params{Series: "Lillans resa"},
		SearchOptions{Sort: "title", Page: pagination.Params{Page: 1, Count: 10}},
	)
	require.NoError(t, err)

	assert.Equal(t, filter.SortTitleNatural, executor.sortSeen)
}

func TestServiceSearch_UnknownSortFallsBackToRanking(t *testing.T) {
	executor := &fakeExecutor{}
	service := NewService(newFakeRepository(), executor, nil, nil)

	_, err := service.Search(context.Background(), filter.Params{}, SearchOptions{
		Sort: "deleted; DROP TABLE",
		Page: pagination.Params{Page: 1, Count: 10},
	})
	require.NoError(t, err)

	assert.Equal(t, "", executor.sortSeen)
}

func TestServiceSearch_RankingPrefersPaintingsBeyondJitter(t *testing.T) {
	// The painting weight (3) exceeds the jitter span, so a painting always
	// outranks an unweighted tie regardless of the seed.
	executor := &fakeExecutor{matches: []search.Match{
		{InsertID: 1},
		{InsertID: 2, Genres: []string{"Målning"}},
	}}
	repository := newFakeRepository(testDocument(1, "a"), testDocument(2, "b"))
	service := NewService(repository, executor, nil, nil)

	for _, seed := range []int64{0, 1, 7, 12345} {
		pinned := seed
		result, err := service.Search(context.Background(), filter.Params{}, SearchOptions{
			Seed: &pinned,
			Page: pagination.Params{Page: 1, Count: 10},
		})
		require.NoError(t, err)

		require.Len(t, result.Documents, 2)
		assert.Equal(t, 2, result.Documents[0].InsertID)
	}
}

func TestServiceSearch_PinnedSeedIsReproducible(t *testing.T) {
	executor := &fakeExecutor{matches: []search.Match{
		{InsertID: 1}, {InsertID: 2}, {InsertID: 3}, {InsertID: 4}, {InsertID: 5},
	}}
	repository := newFakeRepository(
		testDocument(1, "a"), testDocument(2, "b"), testDocument(3, "c"),
		testDocument(4, "d"), testDocument(5, "e"),
	)
	service := NewService(repository, executor, nil, nil)

	seed := int64(99)
	options := SearchOptions{Seed: &seed, Page: pagination.Params{Page: 1, Count: 10}}

	first, err := service.Search(context.Background(), filter.Params{}, options)
	require.NoError(t, err)
	second, err := service.Search(context.Background(), filter.Params{}, options)
	require.NoError(t, err)

	assert.Equal(t, first.Documents, second.Documents)
}

func TestServiceGet_MissingDocumentIsNil(t *testing.T) {
	service := NewService(newFakeRepository(), &fakeExecutor{}, nil, nil)

	document, err := service.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, document)
}

func TestServiceCombine_MergesImagesOntoFirstDocument(t *testing.T) {
	one := 1
	two := 2

	keep := testDocument(10, "keep")
	keep.Images = []Image{{Image: "shared", Page: Page{Order: &two}}}
	duplicate := testDocument(11, "dup")
	duplicate.Images = []Image{
		{Image: "shared", Page: Page{Order: &two}},
		{Image: "extra", Page: Page{Order: &one}},
	}

	repository := newFakeRepository(keep, duplicate)
	service := NewService(repository, &fakeExecutor{}, nil, nil)

	result, err := service.Combine(context.Background(), []string{"keep", "dup"}, "keep")
	require.NoError(t, err)

	assert.Equal(t, 10, result.Keep)
	assert.Equal(t, 2, result.Images)
	assert.Equal(t, []int{11}, result.Deleted)
	assert.Equal(t, []int{11}, repository.hardDeleted)

	merged := repository.updatedImages[10]
	require.Len(t, merged, 2)
	assert.Equal(t, "extra", merged[0].Filename)
	assert.Equal(t, "shared", merged[1].Filename)
}

func TestServiceCombine_SelectedSurvivorWins(t *testing.T) {
	repository := newFakeRepository(testDocument(10, "a"), testDocument(11, "b"))
	service := NewService(repository, &fakeExecutor{}, nil, nil)

	result, err := service.Combine(context.Background(), []string{"a", "b"}, "b")
	require.NoError(t, err)

	assert.Equal(t, 11, result.Keep)
	assert.Equal(t, []int{10}, result.Deleted)
}

func TestServiceCombine_MissingDocumentAborts(t *testing.T) {
	repository := newFakeRepository(testDocument(10, "keep"))
	service := NewService(repository, &fakeExecutor{}, nil, nil)

	_, err := service.Combine(context.Background(), []string{"keep", "nope"}, "keep")

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, combineFailedMessage, appError.Message)
	assert.Empty(t, repository.hardDeleted)
}

func TestServiceCombine_RequiresTwoDocuments(t *testing.T) {
	service := NewService(newFakeRepository(), &fakeExecutor{}, nil, nil)

	_, err := service.Combine(context.Background(), []string{"a"}, "a")

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestServiceCreate_RequiresPublicID(t *testing.T) {
	service := NewService(newFakeRepository(), &fakeExecutor{}, nil, nil)

	err := service.Create(context.Background(), &ArtworkDocument{})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestServiceCreate_DropsNamelessImages(t *testing.T) {
	repository := newFakeRepository()
	service := NewService(repository, &fakeExecutor{}, nil, nil)

	document := &ArtworkDocument{
		InsertID: 1,
		ID:       "a",
		Images: []Image{
			{Image: "  "},
			{Image: "a-1", ImageSize: ImageSize{Width: 10, Height: 10}},
		},
	}
	require.NoError(t, service.Create(context.Background(), document))

	require.Len(t, document.Images, 1)
	assert.Equal(t, "a-1", document.Images[0].Image)
	assert.Equal(t, 1, repository.insertedID)
}
