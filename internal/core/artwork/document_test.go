// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package artwork

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExhibition(t *testing.T) {
	tests := []struct {
		name     string
		encoded  string
		location string
		year     string
	}{
		{
			name:     "pipe separated",
			encoded:  "Göteborgs konsthall|1921",
			location: "Göteborgs konsthall",
			year:     "1921",
		},
		{
			name:     "space separated",
			encoded:  "Konstakademien, Stockholm 1905",
			location: "Konstakademien, Stockholm",
			year:     "1905",
		},
		{
			name:     "no year",
			encoded:  "Okänd utställning",
			location: "Okänd utställning",
			year:     "",
		},
		{
			name:     "empty",
			encoded:  "",
			location: "",
			year:     "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			exhibition := ParseExhibition(tc.encoded)
			assert.Equal(t, tc.location, exhibition.Location)
			assert.Equal(t, tc.year, exhibition.Year)
		})
	}
}

// A location whose own name ends in four digits is mis-split. That matches
// the historical catalog data and stays that way.
func TestParseExhibition_TrailingDigitsAreAmbiguous(t *testing.T) {
	exhibition := ParseExhibition("Salong 2000")

	assert.Equal(t, "Salong", exhibition.Location)
	assert.Equal(t, "2000", exhibition.Year)
}

func TestExhibitionString(t *testing.T) {
	assert.Equal(t, "Göteborg|1905", Exhibition{Location: "Göteborg", Year: "1905"}.String())
	assert.Equal(t, "Göteborg", Exhibition{Location: "Göteborg"}.String())
}

func TestParseDocumentID(t *testing.T) {
	tests := []struct {
		publicID string
		insertID int
		ok       bool
	}{
		{"4844", 4844, true},
		{"PRIV-4844", 4844, true},
		{"GKM1024", 1024, true},
		{"okänd-teckning", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		insertID, ok := ParseDocumentID(tc.publicID)
		assert.Equal(t, tc.ok, ok, tc.publicID)
		assert.Equal(t, tc.insertID, insertID, tc.publicID)
	}
}

func TestImageOrderValue(t *testing.T) {
	two := 2

	assert.Equal(t, 0, Image{}.OrderValue())
	assert.Equal(t, 2, Image{Page: Page{Order: &two}}.OrderValue())
}

func TestPersonHasName(t *testing.T) {
	assert.False(t, (*Person)(nil).HasName())
	assert.False(t, (&Person{Name: "  "}).HasName())
	assert.True(t, (&Person{Name: "Ester Sahlin"}).HasName())
}
