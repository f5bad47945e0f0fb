// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package facet

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gu-cdh/arosenius-api/internal/core/artwork"
	"github.com/gu-cdh/arosenius-api/internal/core/filter"
)

const (
	// cloudMinDocCount is the exclusive lower bound for tag cloud terms.
	cloudMinDocCount = 4

	// completionLimit bounds every autocompletion group.
	completionLimit = 10
)

// cloudExcluded lists the bulk-imported collections kept out of the tag
// cloud.
var cloudExcluded = map[string]bool{
	"GKMs diabildssamling": true,
	"Skepplandamaterialet": true,
}

// Service shapes the raw aggregates into the response forms of the listing
// endpoints.
type Service struct {
	repository Repository
}

// NewService constructs the facet service.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// ListKeywords returns one facet type's values, alphabetical or by count.
func (service *Service) ListKeywords(ctx context.Context, keywordType string, byCount bool) ([]Entry, error) {
	return service.repository.ListKeywords(ctx, keywordType, byCount)
}

// ListMuseums returns owning museums by document count, descending.
func (service *Service) ListMuseums(ctx context.Context) ([]Entry, error) {
	return service.repository.ListMuseums(ctx)
}

/*
TagCloud aggregates the cloud terms: every facet type except the artwork
type, plus museums, all above the minimum document count.

The tag facet appears under the plural name "tags" and the bulk-imported
collections are excluded, matching what the frontend's cloud renders.
*/
func (service *Service) TagCloud(ctx context.Context) ([]CloudEntry, error) {
	keywords, err := service.repository.KeywordCloud(ctx, cloudMinDocCount)
	if err != nil {
		return nil, err
	}

	cloud := make([]CloudEntry, 0, len(keywords))
	for _, entry := range keywords {
		if cloudExcluded[entry.Value] {
			continue
		}
		if entry.Type == filter.FacetTag {
			entry.Type = "tags"
		}
		cloud = append(cloud, entry)
	}

	museums, err := service.repository.ListMuseums(ctx)
	if err != nil {
		return nil, err
	}
	for _, museum := range museums {
		if museum.DocCount <= cloudMinDocCount {
			continue
		}
		cloud = append(cloud, CloudEntry{
			Type:     "museum",
			Value:    museum.Value,
			DocCount: museum.DocCount,
		})
	}

	return cloud, nil
}

// PageSides returns the distinct image page sides.
func (service *Service) PageSides(ctx context.Context) ([]Value, error) {
	return service.repository.ListPageSides(ctx)
}

// Exhibitions returns the distinct exhibitions in their "location|year"
// string form, deduplicated and sorted.
func (service *Service) Exhibitions(ctx context.Context) ([]Value, error) {
	rows, err := service.repository.ListExhibitions(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(rows))
	encoded := make([]string, 0, len(rows))
	for _, row := range rows {
		value := artwork.Exhibition{Location: row.Location, Year: row.Year}.String()
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		encoded = append(encoded, value)
	}
	sort.Strings(encoded)

	values := make([]Value, 0, len(encoded))
	for _, value := range encoded {
		values = append(values, Value{Value: value})
	}
	return values, nil
}

// YearRange compiles the filter parameters and returns document counts per
// 4-character year bucket.
func (service *Service) YearRange(ctx context.Context, params filter.Params) ([]YearCount, error) {
	return service.repository.YearCounts(ctx, filter.Compile(params))
}

// Autocomplete is the grouped completion response.
type Autocomplete struct {
	Documents []DocumentCompletion `json:"documents"`
	Titles    []Completion         `json:"titles"`
	Tags      []Completion         `json:"tags"`
	Persons   []Completion         `json:"persons"`
	Places    []Completion         `json:"places"`
	Genre     []Completion         `json:"genre"`
	Type      []Completion         `json:"type"`
	Series    []Completion         `json:"series"`
	Museum    []Completion         `json:"museum"`
}

/*
Complete returns grouped completions for a typed prefix: matching documents
for direct navigation, then per-facet term groups. The groups are fetched
concurrently; an empty prefix returns empty groups without touching storage.
*/
func (service *Service) Complete(ctx context.Context, term string) (*Autocomplete, error) {
	result := &Autocomplete{}

	prefix := filter.Fold(strings.TrimSpace(term))
	if prefix == "" {
		return normalizeGroups(result), nil
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		documents, err := service.repository.CompleteDocuments(groupCtx, prefix, completionLimit)
		result.Documents = documents
		return err
	})
	group.Go(func() error {
		titles, err := service.repository.CompleteTitles(groupCtx, prefix, completionLimit)
		result.Titles = titles
		return err
	})
	group.Go(func() error {
		museums, err := service.repository.CompleteMuseums(groupCtx, prefix, completionLimit)
		result.Museum = museums
		return err
	})

	facets := []struct {
		keywordType string
		target      *[]Completion
	}{
		{filter.FacetTag, &result.Tags},
		{filter.FacetPerson, &result.Persons},
		{filter.FacetPlace, &result.Places},
		{filter.FacetGenre, &result.Genre},
		{filter.FacetType, &result.Type},
		{filter.FacetSeries, &result.Series},
	}
	for _, facet := range facets {
		keywordType, target := facet.keywordType, facet.target
		group.Go(func() error {
			completions, err := service.repository.CompleteKeywords(groupCtx, keywordType, prefix, completionLimit)
			*target = completions
			return err
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return normalizeGroups(result), nil
}

// normalizeGroups keeps empty completion groups serializing as arrays.
func normalizeGroups(result *Autocomplete) *Autocomplete {
	if result.Documents == nil {
		result.Documents = []DocumentCompletion{}
	}
	for _, target := range []*[]Completion{
		&result.Titles, &result.Tags, &result.Persons, &result.Places,
		&result.Genre, &result.Type, &result.Series, &result.Museum,
	} {
		if *target == nil {
			*target = []Completion{}
		}
	}
	return result
}
