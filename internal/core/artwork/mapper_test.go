// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package artwork

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gu-cdh/arosenius-api/internal/core/filter"
)

func TestDisassembleAssembleRoundTrip(t *testing.T) {
	order := 1
	document := &ArtworkDocument{
		InsertID:       4844,
		ID:             "PRIV-4844",
		Title:          "Lillan i trädgården",
		Deleted:        false,
		Published:      true,
		Description:    "Akvarell på papper",
		MuseumIntID:    []string{"GKM 1024", "NM 77"},
		Collection:     Collection{Museum: "Göteborgs konstmuseum"},
		ItemDateString: "1905",
		Bundle:         "Skissbok 3",
		Genre:          []string{"Målning"},
		Tags:           []string{"trädgård", "barn"},
		Persons:        []string{"Lillan"},
		Exhibitions:    []string{"Göteborgs konsthall|1921"},
		Images: []Image{
			{
				Image: "priv-4844-recto",
				Page:  Page{Number: 1, Order: &order, Side: "recto"},
			},
		},
	}

	parts, err := Disassemble(document)
	require.NoError(t, err)

	require.Len(t, parts.Keywords, 4)
	require.Len(t, parts.Images, 1)
	assert.Equal(t, "GKM 1024|NM 77", parts.Artwork.MuseumIntID)
	assert.JSONEq(t, `[{"location":"Göteborgs konsthall","year":"1921"}]`, string(parts.Artwork.Exhibitions))

	assembled, err := Assemble(parts.Artwork, parts.Images, parts.Keywords, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, document.InsertID, assembled.InsertID)
	assert.Equal(t, document.ID, assembled.ID)
	assert.Equal(t, document.Title, assembled.Title)
	assert.Equal(t, document.MuseumIntID, assembled.MuseumIntID)
	assert.Equal(t, document.Collection, assembled.Collection)
	assert.Equal(t, document.Genre, assembled.Genre)
	assert.Equal(t, document.Tags, assembled.Tags)
	assert.Equal(t, document.Persons, assembled.Persons)
	assert.Equal(t, document.Exhibitions, assembled.Exhibitions)
	require.Len(t, assembled.Images, 1)
	assert.Equal(t, "priv-4844-recto", assembled.Images[0].Image)
	assert.Equal(t, &order, assembled.Images[0].Page.Order)

	// Missing correspondents come back as empty objects, never absent.
	assert.Equal(t, &Person{}, assembled.Sender)
	assert.Equal(t, &Person{}, assembled.Recipient)
}

func TestDisassemble_KeepsTopScoredColor(t *testing.T) {
	document := &ArtworkDocument{
		InsertID: 1,
		ID:       "a",
		Images: []Image{{
			Image: "a-1",
			GoogleVisionColors: json.RawMessage(`[
				{"color":{"red":200,"green":100,"blue":50},"score":0.3},
				{"color":{"red":255,"green":0,"blue":0},"score":0.8}
			]`),
		}},
	}

	parts, err := Disassemble(document)
	require.NoError(t, err)
	require.Len(t, parts.Images, 1)

	row := parts.Images[0]
	assert.JSONEq(t, `{"red":255,"green":0,"blue":0}`, string(row.Color))

	require.NotNil(t, row.Hue)
	require.NotNil(t, row.Saturation)
	require.NotNil(t, row.Lightness)
	assert.InDelta(t, 0, *row.Hue, 0.01)
	assert.InDelta(t, 100, *row.Saturation, 0.01)
	assert.InDelta(t, 50, *row.Lightness, 0.01)
}

func TestAssembleImage_RewrapsDominantColor(t *testing.T) {
	row := ImageRow{
		Filename: "a-1",
		Color:    []byte(`{"red":10,"green":20,"blue":30}`),
	}

	img, err := assembleImage(row)
	require.NoError(t, err)

	assert.JSONEq(t,
		`[{"color":{"red":10,"green":20,"blue":30},"score":1}]`,
		string(img.GoogleVisionColors))
}

func TestAssemble_OrdersImagesTreatingAbsentOrderAsZero(t *testing.T) {
	two := 2
	one := 1
	rows := []ImageRow{
		{Filename: "second", PageOrder: &two},
		{Filename: "first", PageOrder: &one},
		{Filename: "unordered"},
	}

	assembled, err := Assemble(ArtworkRow{InsertID: 1, Name: "a"}, rows, nil, nil, nil)
	require.NoError(t, err)

	require.Len(t, assembled.Images, 3)
	assert.Equal(t, "unordered", assembled.Images[0].Image)
	assert.Equal(t, "first", assembled.Images[1].Image)
	assert.Equal(t, "second", assembled.Images[2].Image)
}

func TestDisassemble_SkipsEmptyFacetValues(t *testing.T) {
	document := &ArtworkDocument{
		InsertID: 1,
		ID:       "a",
		Tags:     []string{"akvarell", ""},
	}

	parts, err := Disassemble(document)
	require.NoError(t, err)

	require.Len(t, parts.Keywords, 1)
	assert.Equal(t, KeywordRow{ArtworkID: 1, Type: filter.FacetTag, Name: "akvarell"}, parts.Keywords[0])
}

func TestKeywordValuesByType(t *testing.T) {
	grouped := keywordValuesByType([]KeywordRow{
		{Type: filter.FacetTag, Name: "akvarell"},
		{Type: filter.FacetGenre, Name: "Målning"},
		{Type: filter.FacetTag, Name: "barn"},
	})

	assert.Equal(t, []string{"akvarell", "barn"}, grouped[filter.FacetTag])
	assert.Equal(t, []string{"Målning"}, grouped[filter.FacetGenre])
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name             string
		r, g, b          float64
		hue, sat, light  float64
	}{
		{"red", 255, 0, 0, 0, 100, 50},
		{"green", 0, 255, 0, 120, 100, 50},
		{"blue", 0, 0, 255, 240, 100, 50},
		{"white", 255, 255, 255, 0, 0, 100},
		{"gray", 128, 128, 128, 0, 0, 50.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hue, sat, light := rgbToHSL(tc.r, tc.g, tc.b)
			assert.InDelta(t, tc.hue, hue, 0.1)
			assert.InDelta(t, tc.sat, sat, 0.1)
			assert.InDelta(t, tc.light, light, 0.1)
		})
	}
}
