// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

// Package schema centralizes table and column names so that query builders
// never embed raw identifier strings.
//
// Column names keep the snake_case identifiers of the legacy catalog so the
// database remains readable next to historical exports.
package schema

// ArchiveArtworkTable represents the 'archive.artwork' table
type ArchiveArtworkTable struct {
	Table             string
	InsertID          string
	Name              string
	Title             string
	TitleEN           string
	Subtitle          string
	Deleted           string
	Published         string
	Description       string
	Museum            string
	MuseumIntID       string
	MuseumLink        string
	ItemDateStr       string
	ItemDateString    string
	Size              string
	TechniqueMaterial string
	Acquisition       string
	Content           string
	Inscription       string
	Material          string
	Creator           string
	Signature         string
	Literature        string
	Reproductions     string
	Bundle            string
	Exhibitions       string
	SenderID          string
	RecipientID       string
	CreatedAt         string
	UpdatedAt         string
}

// ArchiveArtwork is the schema definition for archive.artwork
var ArchiveArtwork = ArchiveArtworkTable{
	Table:             "archive.artwork",
	InsertID:          "insert_id",
	Name:              "name",
	Title:             "title",
	TitleEN:           "title_en",
	Subtitle:          "subtitle",
	Deleted:           "deleted",
	Published:         "published",
	Description:       "description",
	Museum:            "museum",
	MuseumIntID:       "museum_int_id",
	MuseumLink:        "museum_link",
	ItemDateStr:       "item_date_str",
	ItemDateString:    "item_date_string",
	Size:              "size",
	TechniqueMaterial: "technique_material",
	Acquisition:       "acquisition",
	Content:           "content",
	Inscription:       "inscription",
	Material:          "material",
	Creator:           "creator",
	Signature:         "signature",
	Literature:        "literature",
	Reproductions:     "reproductions",
	Bundle:            "bundle",
	Exhibitions:       "exhibitions",
	SenderID:          "sender_id",
	RecipientID:       "recipient_id",
	CreatedAt:         "created_at",
	UpdatedAt:         "updated_at",
}

func (t ArchiveArtworkTable) Columns() []string {
	return []string{
		t.InsertID, t.Name, t.Title, t.TitleEN, t.Subtitle, t.Deleted, t.Published, t.Description,
		t.Museum, t.MuseumIntID, t.MuseumLink, t.ItemDateStr, t.ItemDateString, t.Size,
		t.TechniqueMaterial, t.Acquisition, t.Content, t.Inscription, t.Material, t.Creator,
		t.Signature, t.Literature, t.Reproductions, t.Bundle, t.Exhibitions, t.SenderID, t.RecipientID,
		t.CreatedAt, t.UpdatedAt,
	}
}
