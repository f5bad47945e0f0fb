// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

/*
Package filter compiles loosely-typed catalog search parameters into an
immutable, backend-agnostic Plan.

# Architecture

The Plan is the contract between the HTTP layer and the query executors. It is
a pure value: compiling never touches a backend, and the two renderers
([ToSQL], [ToSearch]) are pure translation steps. This keeps the whole query
pipeline testable without a live store.

A Plan is an AND of predicate groups; each group is an OR of leaf predicates.
Free-text search words and dominant-color ranges are carried separately
because their rendering differs structurally from the boolean groups.
*/
package filter

// Logical field names understood by the renderers.
const (
	FieldInsertID       = "insert_id"
	FieldMuseum         = "museum"
	FieldBundle         = "bundle"
	FieldItemDateString = "item_date_string"
)

// Facet type identifiers as stored in the keyword table.
const (
	FacetType   = "type"
	FacetGenre  = "genre"
	FacetTag    = "tag"
	FacetPerson = "person"
	FacetPlace  = "place"
	FacetSeries = "series"
)

// AllFacets lists every facet type, in scoring order.
var AllFacets = []string{FacetType, FacetGenre, FacetTag, FacetPerson, FacetPlace, FacetSeries}

// Color channels for dominant-color range predicates.
const (
	ChannelHue        = "hue"
	ChannelSaturation = "saturation"
	ChannelLightness  = "lightness"
)

// Op identifies the comparison a leaf predicate performs.
type Op int

const (
	// OpNone matches nothing. Malformed numeric input compiles to this
	// instead of failing the request.
	OpNone Op = iota
	// OpEqual is an equality match on a scalar field.
	OpEqual
	// OpPrefix is a prefix match on a scalar field.
	OpPrefix
	// OpGTE is a numeric >= match on a scalar field.
	OpGTE
	// OpFacetAny requires at least one of Values to be present in the
	// document's facet set of type Field.
	OpFacetAny
	// OpFacetNone requires that none of Values are present in the
	// document's facet set of type Field.
	OpFacetNone
)

// Pred is a single leaf predicate.
type Pred struct {
	Op     Op
	Field  string
	Value  string
	Values []string
	Min    float64
}

// Group is an OR of leaf predicates. Groups are ANDed together in a Plan.
//
// CaseSensitive disables the default locale-aware lowercasing for fields
// whose stored values are fixed literals (date prefixes, archive-material
// type literals).
type Group struct {
	Preds         []Pred
	CaseSensitive bool
}

// ColorRange restricts one channel of a dominant image color. All ranges in
// a Plan must hold on the same image.
type ColorRange struct {
	Channel string
	Min     float64
	Max     float64
}

// Plan is the compiled, immutable representation of a search request.
type Plan struct {
	// Groups are ANDed; each group is an OR of its predicates.
	Groups []Group
	// Words are lowercased free-text search words, ANDed. Each word must
	// begin-of-word match at least one weighted field.
	Words []string
	// Color ranges are ANDed and must match a single image.
	Color []ColorRange
	// IncludeUnpublished lifts the default published = true restriction.
	IncludeUnpublished bool
	// IncludeDeleted lifts the default deleted = false restriction.
	IncludeDeleted bool
}

// ScoreField is one weighted target of free-text relevance scoring.
type ScoreField struct {
	// Facet is empty for scalar artwork columns, otherwise a facet type.
	Facet  string
	Column string
	Weight float64
}

// ScoreFields defines the relevance contribution of each searchable field.
// Title and description dominate; type and genre matches outweigh the
// remaining facets.
var ScoreFields = []ScoreField{
	{Column: "title", Weight: 0.5},
	{Column: "description", Weight: 0.5},
	{Column: "museum", Weight: 0.1},
	{Column: "museum_int_id", Weight: 0.1},
	{Column: "material", Weight: 0.1},
	{Facet: FacetType, Weight: 1.0},
	{Facet: FacetGenre, Weight: 1.0},
	{Facet: FacetTag, Weight: 0.1},
	{Facet: FacetPerson, Weight: 0.1},
	{Facet: FacetPlace, Weight: 0.1},
	{Facet: FacetSeries, Weight: 0.1},
}

// group is a convenience constructor for single-predicate groups.
func group(p Pred) Group {
	return Group{Preds: []Pred{p}}
}

// noMatch is the group a malformed parameter compiles to.
func noMatch() Group {
	return group(Pred{Op: OpNone})
}
