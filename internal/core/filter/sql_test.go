// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSQL_DefaultVisibility(t *testing.T) {
	sql, args := ToSQL(Compile(Params{}), "")

	assert.Contains(t, sql, "a.deleted = FALSE")
	assert.Contains(t, sql, "a.published = TRUE")
	assert.NotContains(t, sql, "ORDER BY")
	// Only the always-present genre aggregate argument.
	assert.Equal(t, []any{"genre"}, args)
}

func TestToSQL_VisibilityOverrides(t *testing.T) {
	sql, _ := ToSQL(Compile(Params{ShowDeleted: true, ShowUnpublished: true}), "")

	assert.NotContains(t, sql, "a.deleted")
	assert.NotContains(t, sql, "a.published")
}

func TestToSQL_PrefixMatch(t *testing.T) {
	sql, args := ToSQL(Compile(Params{Museum: "Gö"}), "")

	assert.Contains(t, sql, "lower(a.museum) LIKE")
	assert.Contains(t, args, "gö%")
	// Prefix only: no leading wildcard argument for the museum filter.
	assert.NotContains(t, args, "%gö%")
}

func TestToSQL_FacetFiltersUseExists(t *testing.T) {
	sql, args := ToSQL(Compile(Params{Type: "Teckning", Tags: "hund;katt"}), "")

	assert.Equal(t, 3, strings.Count(sql, "EXISTS (SELECT 1 FROM archive.keyword"))
	assert.Contains(t, args, "teckning")
	assert.Contains(t, args, "hund")
	assert.Contains(t, args, "katt")
}

// Search scoring plus a type filter must still produce exactly one join per
// facet type: scoring joins are aggregated subqueries added once, filters
// never join at all.
func TestToSQL_OneJoinPerFacetType(t *testing.T) {
	sql, _ := ToSQL(Compile(Params{Search: "vinter natt", Type: "Teckning", Genre: "Målning"}), "")

	for _, facet := range AllFacets {
		assert.Equal(t, 1, strings.Count(sql, "kw_"+facet+" ON "),
			"facet %q must be joined exactly once", facet)
	}
}

func TestToSQL_SearchWordsAreANDed(t *testing.T) {
	sql, args := ToSQL(Compile(Params{Search: "vinter natt"}), "")

	// Each word contributes its own conjunct: both word-begin argument pairs
	// must be present for both words.
	assert.Contains(t, args, "vinter%")
	assert.Contains(t, args, "% vinter%")
	assert.Contains(t, args, "natt%")
	assert.Contains(t, args, "% natt%")

	// The score expression carries the configured weights.
	assert.Contains(t, sql, "THEN 0.5 ELSE 0")
	assert.Contains(t, sql, "THEN 1 ELSE 0")
	assert.Contains(t, sql, "THEN 0.1 ELSE 0")
	assert.Contains(t, sql, "AS search_score")
}

func TestToSQL_NoSearchMeansZeroScore(t *testing.T) {
	sql, _ := ToSQL(Compile(Params{Museum: "Gö"}), "")

	assert.Contains(t, sql, "0.0 AS search_score")
}

func TestToSQL_ColorRangesShareOneImage(t *testing.T) {
	sql, args := ToSQL(Compile(Params{Hue: "120", Saturation: "50"}), "")

	// One EXISTS over the image table with both channel conditions inside.
	assert.Equal(t, 1, strings.Count(sql, "FROM archive.image"))
	assert.Contains(t, sql, "i.color_hue BETWEEN")
	assert.Contains(t, sql, "i.color_saturation BETWEEN")
	assert.Contains(t, args, 105.0)
	assert.Contains(t, args, 135.0)
}

func TestToSQL_MalformedInputRendersFalse(t *testing.T) {
	sql, _ := ToSQL(Compile(Params{InsertIDFrom: "abc"}), "")

	assert.Contains(t, sql, "(FALSE)")
}

func TestToSQL_SortWhitelist(t *testing.T) {
	sql, _ := ToSQL(Compile(Params{}), "insert_id")
	assert.Contains(t, sql, "ORDER BY a.insert_id ASC")

	sql, _ = ToSQL(Compile(Params{}), "title")
	assert.Contains(t, sql, "ORDER BY a.title ASC")

	// Unknown sort fields are ignored, never interpolated.
	sql, _ = ToSQL(Compile(Params{}), "deleted; DROP TABLE artwork")
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "DROP TABLE")
}

func TestToSQL_LikeEscaping(t *testing.T) {
	_, args := ToSQL(Compile(Params{Museum: "50%_rabatt"}), "")

	require.NotEmpty(t, args)
	assert.Contains(t, args, `50\%\_rabatt%`)
}

func TestToYearCountSQL(t *testing.T) {
	sql, _ := ToYearCountSQL(Compile(Params{Type: "Brev"}))

	assert.Contains(t, sql, "substring(a.item_date_string, 1, 4)")
	assert.Contains(t, sql, "GROUP BY")
	assert.Contains(t, sql, "a.item_date_string <> ''")
	// The filter still applies to the counted corpus.
	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM archive.keyword")
	// No relevance machinery in an aggregation query.
	assert.NotContains(t, sql, "search_score")
}
