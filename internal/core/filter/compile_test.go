// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Empty(t *testing.T) {
	plan := Compile(Params{})

	assert.Empty(t, plan.Groups)
	assert.Empty(t, plan.Words)
	assert.Empty(t, plan.Color)
	assert.False(t, plan.IncludeDeleted)
	assert.False(t, plan.IncludeUnpublished)
}

func TestCompile_SemicolonListsBecomeSeparateGroups(t *testing.T) {
	plan := Compile(Params{Tags: "blommor;hund", Person: "Ester"})

	// Each tag and each person must independently be present: one group per value.
	require.Len(t, plan.Groups, 3)
	for _, grp := range plan.Groups {
		require.Len(t, grp.Preds, 1)
		assert.Equal(t, OpFacetAny, grp.Preds[0].Op)
	}

	assert.Equal(t, []string{"ester"}, plan.Groups[0].Preds[0].Values)
	assert.Equal(t, []string{"blommor"}, plan.Groups[1].Preds[0].Values)
	assert.Equal(t, []string{"hund"}, plan.Groups[2].Preds[0].Values)
}

func TestCompile_SwedishLowercasing(t *testing.T) {
	plan := Compile(Params{Museum: "GÖTEBORGS konstmuseum"})

	require.Len(t, plan.Groups, 1)
	assert.Equal(t, OpPrefix, plan.Groups[0].Preds[0].Op)
	assert.Equal(t, "göteborgs konstmuseum", plan.Groups[0].Preds[0].Value)
}

func TestCompile_ArchiveMaterial(t *testing.T) {
	only := Compile(Params{ArchiveMaterial: "only"})
	require.Len(t, only.Groups, 1)
	assert.Equal(t, OpFacetNone, only.Groups[0].Preds[0].Op)
	assert.Equal(t, []string{LiteralPhotograph, LiteralArtwork}, only.Groups[0].Preds[0].Values)
	assert.True(t, only.Groups[0].CaseSensitive)

	exclude := Compile(Params{ArchiveMaterial: "exclude"})
	require.Len(t, exclude.Groups, 1)
	assert.Equal(t, OpFacetAny, exclude.Groups[0].Preds[0].Op)

	// Unknown values are ignored rather than rejected.
	assert.Empty(t, Compile(Params{ArchiveMaterial: "bogus"}).Groups)
}

func TestCompile_MalformedNumbersMatchNothing(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"insert id from", Params{InsertIDFrom: "abc"}},
		{"hue", Params{Hue: "reddish"}},
		{"lightness", Params{Lightness: "12,5"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan := Compile(tc.params)
			require.Len(t, plan.Groups, 1)
			assert.Equal(t, OpNone, plan.Groups[0].Preds[0].Op)
			assert.Empty(t, plan.Color)
		})
	}
}

func TestCompile_ColorRanges(t *testing.T) {
	plan := Compile(Params{Hue: "120", Saturation: "40"})

	require.Len(t, plan.Color, 2)
	assert.Equal(t, ColorRange{Channel: ChannelHue, Min: 105, Max: 135}, plan.Color[0])
	assert.Equal(t, ColorRange{Channel: ChannelSaturation, Min: 25, Max: 55}, plan.Color[1])
}

func TestCompile_SearchWords(t *testing.T) {
	plan := Compile(Params{Search: "  Vinter  MÅNE "})

	assert.Equal(t, []string{"vinter", "måne"}, plan.Words)
}

func TestCompile_YearIsCaseSensitivePrefix(t *testing.T) {
	plan := Compile(Params{Year: "1903"})

	require.Len(t, plan.Groups, 1)
	assert.True(t, plan.Groups[0].CaseSensitive)
	assert.Equal(t, OpPrefix, plan.Groups[0].Preds[0].Op)
	assert.Equal(t, FieldItemDateString, plan.Groups[0].Preds[0].Field)
}

func TestCompile_VisibilityOverrides(t *testing.T) {
	plan := Compile(Params{ShowUnpublished: true, ShowDeleted: true})

	assert.True(t, plan.IncludeUnpublished)
	assert.True(t, plan.IncludeDeleted)
}

func TestParamsFromQuery(t *testing.T) {
	values, err := url.ParseQuery("museum=G%C3%B6&tags=a%3Bb&showDeleted=true&archivematerial=only&hue=100")
	require.NoError(t, err)

	params := ParamsFromQuery(values)

	assert.Equal(t, "Gö", params.Museum)
	assert.Equal(t, "a;b", params.Tags)
	assert.True(t, params.ShowDeleted)
	assert.False(t, params.ShowUnpublished)
	assert.Equal(t, "only", params.ArchiveMaterial)
	assert.Equal(t, "100", params.Hue)
}
