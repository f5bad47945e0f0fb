// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSearch_Empty(t *testing.T) {
	plan := Plan{IncludeDeleted: true, IncludeUnpublished: true}

	assert.Equal(t, "*", ToSearch(plan))
}

func TestToSearch_DefaultVisibility(t *testing.T) {
	q := ToSearch(Compile(Params{}))

	assert.Contains(t, q, "@deleted:{false}")
	assert.Contains(t, q, "@published:{true}")
}

func TestToSearch_FacetFilters(t *testing.T) {
	q := ToSearch(Compile(Params{Type: "teckning", Tags: "hund;katt"}))

	assert.Contains(t, q, "@type:{teckning}")
	// AND semantics: two separate conjuncts, not one union.
	assert.Contains(t, q, "@tag:{hund}")
	assert.Contains(t, q, "@tag:{katt}")
}

func TestToSearch_ArchiveMaterial(t *testing.T) {
	only := ToSearch(Compile(Params{ArchiveMaterial: "only"}))
	assert.Contains(t, only, "-@type:{Fotografi|Konstverk}")

	exclude := ToSearch(Compile(Params{ArchiveMaterial: "exclude"}))
	assert.Contains(t, exclude, "@type:{Fotografi|Konstverk}")
	assert.NotContains(t, exclude, "-@type")
}

func TestToSearch_RangesAndPrefixes(t *testing.T) {
	q := ToSearch(Compile(Params{InsertIDFrom: "1000", Year: "1903", Hue: "120"}))

	assert.Contains(t, q, "@insert_id:[1000 +inf]")
	assert.Contains(t, q, "@item_date_string:{1903*}")
	assert.Contains(t, q, "@color_hue:[105 135]")
}

func TestToSearch_WordsSpanWeightedFields(t *testing.T) {
	q := ToSearch(Compile(Params{Search: "vinter natt"}))

	assert.Contains(t, q, "title|description|museum|museum_int_id|material")
	assert.Contains(t, q, "kw_type|kw_genre|kw_tag|kw_person|kw_place|kw_series")
	assert.Contains(t, q, "(vinter*)")
	assert.Contains(t, q, "(natt*)")
}

func TestToSearch_MalformedInputMatchesNothing(t *testing.T) {
	q := ToSearch(Compile(Params{InsertIDFrom: "abc"}))

	assert.Contains(t, q, "@insert_id:[-1 -1]")
}

func TestToSearch_TagEscaping(t *testing.T) {
	q := ToSearch(Compile(Params{Type: "olja på duk"}))

	assert.Contains(t, q, `@type:{olja\ på\ duk}`)
}
