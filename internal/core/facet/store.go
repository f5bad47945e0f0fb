// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

/*
Package facet serves the aggregated listing endpoints of the catalog: the
per-facet value lists the frontend builds its filter menus from, the tag
cloud, autocompletion and the year histogram.

All aggregates exclude soft-deleted artworks. Published state is not
filtered here: the menus deliberately show values of unpublished records so
editors can find them.
*/
package facet

import (
	"context"

	"github.com/gu-cdh/arosenius-api/internal/core/filter"
)

// Entry is one aggregated facet value.
type Entry struct {
	Value    string `json:"value"`
	DocCount int    `json:"doc_count"`
}

// Value is a bare distinct value, for listings without counts.
type Value struct {
	Value string `json:"value"`
}

// CloudEntry is one tag-cloud term, carrying its facet type.
type CloudEntry struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	DocCount int    `json:"doc_count"`
}

// YearCount is one bucket of the year histogram.
type YearCount struct {
	Year     string `json:"year"`
	DocCount int    `json:"doc_count"`
}

// ExhibitionRow is one distinct location/year pair from storage.
type ExhibitionRow struct {
	Location string
	Year     string
}

// Completion is one autocompletion term.
type Completion struct {
	Key      string `json:"key"`
	DocCount int    `json:"doc_count"`
}

// DocumentCompletion points an autocompleted title at its document.
type DocumentCompletion struct {
	Key string `json:"key"`
	ID  string `json:"id"`
}

// Repository defines the aggregate queries of the facet domain.
type Repository interface {

	/*
		ListKeywords aggregates the values of one facet type with their
		document counts, excluding soft-deleted artworks.

		Parameters:
		  - context: context.Context
		  - keywordType: string (Facet type; one of the stored keyword types)
		  - byCount: bool (true orders by document count descending, false alphabetically)

		Returns:
		  - []Entry: Aggregated values
		  - error: Database retrieval failures
	*/
	ListKeywords(context context.Context, keywordType string, byCount bool) ([]Entry, error)

	/*
		ListMuseums aggregates owning museums by document count, descending,
		excluding soft-deleted artworks and empty museum names.
	*/
	ListMuseums(context context.Context) ([]Entry, error)

	/*
		KeywordCloud aggregates every facet type except the artwork type
		itself, keeping values above the given document count.
	*/
	KeywordCloud(context context.Context, minDocCount int) ([]CloudEntry, error)

	/*
		ListPageSides returns the distinct image sides (recto/verso and the
		bundle page labels).
	*/
	ListPageSides(context context.Context) ([]Value, error)

	/*
		ListExhibitions returns the distinct exhibition location/year pairs
		of non-deleted artworks.
	*/
	ListExhibitions(context context.Context) ([]ExhibitionRow, error)

	/*
		YearCounts runs the year histogram for a compiled filter plan.
	*/
	YearCounts(context context.Context, plan filter.Plan) ([]YearCount, error)

	/*
		CompleteKeywords returns the values of one facet type whose words
		begin with the given folded prefix, most frequent first.
	*/
	CompleteKeywords(context context.Context, keywordType, prefix string, limit int) ([]Completion, error)

	/*
		CompleteTitles aggregates artwork titles matching the prefix.
	*/
	CompleteTitles(context context.Context, prefix string, limit int) ([]Completion, error)

	/*
		CompleteMuseums aggregates museum names matching the prefix.
	*/
	CompleteMuseums(context context.Context, prefix string, limit int) ([]Completion, error)

	/*
		CompleteDocuments returns individual documents whose title matches
		the prefix, for direct navigation.
	*/
	CompleteDocuments(context context.Context, prefix string, limit int) ([]DocumentCompletion, error)
}
