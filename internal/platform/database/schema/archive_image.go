// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package schema

// ArchiveImageTable represents the 'archive.image' table
type ArchiveImageTable struct {
	Table           string
	ID              string
	ArtworkID       string
	Filename        string
	Format          string
	Width           string
	Height          string
	PageNumber      string
	PageID          string
	PageOrder       string
	Side            string
	Color           string
	ColorHue        string
	ColorSaturation string
	ColorLightness  string
}

// ArchiveImage is the schema definition for archive.image.
// (artwork_id, filename) carries a unique constraint.
var ArchiveImage = ArchiveImageTable{
	Table:           "archive.image",
	ID:              "id",
	ArtworkID:       "artwork_id",
	Filename:        "filename",
	Format:          "format",
	Width:           "width",
	Height:          "height",
	PageNumber:      "page_number",
	PageID:          "page_id",
	PageOrder:       "page_order",
	Side:            "side",
	Color:           "color",
	ColorHue:        "color_hue",
	ColorSaturation: "color_saturation",
	ColorLightness:  "color_lightness",
}

func (t ArchiveImageTable) Columns() []string {
	return []string{
		t.ID, t.ArtworkID, t.Filename, t.Format, t.Width, t.Height,
		t.PageNumber, t.PageID, t.PageOrder, t.Side,
		t.Color, t.ColorHue, t.ColorSaturation, t.ColorLightness,
	}
}
