// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package filter

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gu-cdh/arosenius-api/pkg/query"
)

// Archive material type literals. Stored capitalized; compared case-sensitively.
const (
	LiteralPhotograph = "Fotografi"
	LiteralArtwork    = "Konstverk"
)

// ColorMargin is the half-width of the range applied around a requested
// hue/saturation/lightness value.
const ColorMargin = 15

// swedishLower folds filter values with Swedish collation rules so that
// å/ä/ö compare correctly against stored keyword names.
var swedishLower = cases.Lower(language.Swedish)

// Fold lowercases a filter value with the same Swedish collation rules the
// compiler applies, for callers that match user input outside a plan.
func Fold(value string) string {
	return swedishLower.String(value)
}

// Params are the raw, independently optional search parameters.
//
// Every field is a plain string straight from the query; the compiler owns
// all parsing so that malformed input degrades to "no match" instead of a
// request error.
type Params struct {
	InsertIDFrom    string
	Museum          string
	Bundle          string
	Search          string
	Type            string
	Genre           string
	Place           string
	Person          string
	Tags            string
	Series          string
	Year            string
	ArchiveMaterial string
	Hue             string
	Saturation      string
	Lightness       string
	ShowUnpublished bool
	ShowDeleted     bool
}

// ParamsFromQuery reads the supported filter parameters from a URL query.
func ParamsFromQuery(q url.Values) Params {
	return Params{
		InsertIDFrom:    q.Get("insert_id"),
		Museum:          q.Get("museum"),
		Bundle:          q.Get("bundle"),
		Search:          q.Get("search"),
		Type:            q.Get("type"),
		Genre:           q.Get("genre"),
		Place:           q.Get("place"),
		Person:          q.Get("person"),
		Tags:            q.Get("tags"),
		Series:          q.Get("series"),
		Year:            q.Get("year"),
		ArchiveMaterial: q.Get("archivematerial"),
		Hue:             q.Get("hue"),
		Saturation:      q.Get("saturation"),
		Lightness:       q.Get("lightness"),
		ShowUnpublished: q.Get("showUnpublished") == "true",
		ShowDeleted:     q.Get("showDeleted") == "true",
	}
}

// Compile translates the parameters into an immutable Plan.
//
// All parameters combine with AND. Distinct values of a semicolon-separated
// list (person, tags) also combine with AND: each value becomes its own
// group, so every value must independently be present on the document.
func Compile(params Params) Plan {
	plan := Plan{
		IncludeUnpublished: params.ShowUnpublished,
		IncludeDeleted:     params.ShowDeleted,
	}

	if params.InsertIDFrom != "" {
		if from, err := strconv.Atoi(params.InsertIDFrom); err == nil {
			plan.Groups = append(plan.Groups, group(Pred{
				Op:    OpGTE,
				Field: FieldInsertID,
				Min:   float64(from),
			}))
		} else {
			plan.Groups = append(plan.Groups, noMatch())
		}
	}

	if params.Museum != "" {
		plan.Groups = append(plan.Groups, group(Pred{
			Op:    OpPrefix,
			Field: FieldMuseum,
			Value: swedishLower.String(params.Museum),
		}))
	}

	if params.Bundle != "" {
		plan.Groups = append(plan.Groups, group(Pred{
			Op:    OpPrefix,
			Field: FieldBundle,
			Value: swedishLower.String(params.Bundle),
		}))
	}

	// Single-valued facets: exact, case-insensitive.
	plan.Groups = appendFacetEquals(plan.Groups, FacetType, params.Type)
	plan.Groups = appendFacetEquals(plan.Groups, FacetGenre, params.Genre)
	plan.Groups = appendFacetEquals(plan.Groups, FacetPlace, params.Place)

	// Semicolon lists: every value must be present (AND).
	for _, person := range query.Values(params.Person) {
		plan.Groups = appendFacetEquals(plan.Groups, FacetPerson, person)
	}
	for _, tag := range query.Values(params.Tags) {
		plan.Groups = appendFacetEquals(plan.Groups, FacetTag, tag)
	}
	for _, series := range query.Values(params.Series) {
		plan.Groups = appendFacetEquals(plan.Groups, FacetSeries, series)
	}

	// Year buckets are 4-character prefixes of the sortable date string.
	if params.Year != "" {
		plan.Groups = append(plan.Groups, Group{
			Preds: []Pred{{
				Op:    OpPrefix,
				Field: FieldItemDateString,
				Value: params.Year,
			}},
			CaseSensitive: true,
		})
	}

	switch params.ArchiveMaterial {
	case "only":
		// Archive material proper: neither a photograph nor an artwork.
		plan.Groups = append(plan.Groups, Group{
			Preds: []Pred{{
				Op:     OpFacetNone,
				Field:  FacetType,
				Values: []string{LiteralPhotograph, LiteralArtwork},
			}},
			CaseSensitive: true,
		})
	case "exclude":
		plan.Groups = append(plan.Groups, Group{
			Preds: []Pred{{
				Op:     OpFacetAny,
				Field:  FacetType,
				Values: []string{LiteralPhotograph, LiteralArtwork},
			}},
			CaseSensitive: true,
		})
	}

	plan.Color = appendColor(plan.Color, &plan, ChannelHue, params.Hue)
	plan.Color = appendColor(plan.Color, &plan, ChannelSaturation, params.Saturation)
	plan.Color = appendColor(plan.Color, &plan, ChannelLightness, params.Lightness)

	// Whitespace-separated search words combine with AND: every word must
	// begin-of-word match at least one weighted field.
	for _, word := range strings.Fields(params.Search) {
		plan.Words = append(plan.Words, swedishLower.String(word))
	}

	return plan
}

// FacetPlan is a single-facet membership plan, used as a similarity feature.
func FacetPlan(facet, value string) Plan {
	return Plan{Groups: []Group{group(Pred{
		Op:     OpFacetAny,
		Field:  facet,
		Values: []string{swedishLower.String(value)},
	})}}
}

// ColorPlan matches documents whose dominant image color sits near the given
// HSL tuple. Hue is held tighter than saturation and lightness.
func ColorPlan(hue, saturation, lightness float64) Plan {
	return Plan{Color: []ColorRange{
		{Channel: ChannelHue, Min: hue - ColorMargin, Max: hue + ColorMargin},
		{Channel: ChannelSaturation, Min: saturation - 2*ColorMargin, Max: saturation + 2*ColorMargin},
		{Channel: ChannelLightness, Min: lightness - 2*ColorMargin, Max: lightness + 2*ColorMargin},
	}}
}

func appendFacetEquals(groups []Group, facet, value string) []Group {
	if value == "" {
		return groups
	}
	return append(groups, group(Pred{
		Op:     OpFacetAny,
		Field:  facet,
		Values: []string{swedishLower.String(value)},
	}))
}

func appendColor(ranges []ColorRange, plan *Plan, channel, raw string) []ColorRange {
	if raw == "" {
		return ranges
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Permissive contract: a non-numeric color value matches nothing.
		plan.Groups = append(plan.Groups, noMatch())
		return ranges
	}
	return append(ranges, ColorRange{
		Channel: channel,
		Min:     value - ColorMargin,
		Max:     value + ColorMargin,
	})
}
