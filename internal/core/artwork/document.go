// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

/*
Package artwork implements the document side of the archive: the denormalized
ArtworkDocument clients read and edit, its mapping onto the normalized
relational tables, and the diff-based persistence of its multi-valued
children.

# Architecture

The package follows the store / service / handler split. The mapper
(Assemble/Disassemble) and the diff engine (DiffImages/DiffKeywords) are pure;
all storage effects live in the Postgres repository.
*/
package artwork

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// ArtworkDocument is the denormalized unit clients see and edit.
//
// Field names mirror the public JSON contract of the legacy catalog API and
// must not be renamed.
type ArtworkDocument struct {
	InsertID          int             `json:"insert_id"`
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	TitleEN           string          `json:"title_en,omitempty"`
	Subtitle          string          `json:"subtitle,omitempty"`
	Deleted           bool            `json:"deleted"`
	Published         bool            `json:"published"`
	Description       string          `json:"description,omitempty"`
	MuseumIntID       []string        `json:"museum_int_id,omitempty"`
	Collection        Collection      `json:"collection"`
	MuseumLink        string          `json:"museumLink,omitempty"`
	ItemDateStr       string          `json:"item_date_str,omitempty"`
	ItemDateString    string          `json:"item_date_string,omitempty"`
	Size              json.RawMessage `json:"size,omitempty"`
	TechniqueMaterial string          `json:"technique_material,omitempty"`
	Acquisition       string          `json:"acquisition,omitempty"`
	Content           string          `json:"content,omitempty"`
	Inscription       string          `json:"inscription,omitempty"`
	Material          string          `json:"material,omitempty"`
	Creator           string          `json:"creator,omitempty"`
	Signature         string          `json:"signature,omitempty"`
	Literature        string          `json:"literature,omitempty"`
	Reproductions     string          `json:"reproductions,omitempty"`
	Bundle            string          `json:"bundle,omitempty"`
	Images            []Image         `json:"images,omitempty"`
	Type              []string        `json:"type,omitempty"`
	Tags              []string        `json:"tags,omitempty"`
	Persons           []string        `json:"persons,omitempty"`
	Places            []string        `json:"places,omitempty"`
	Genre             []string        `json:"genre,omitempty"`
	Series            []string        `json:"series,omitempty"`
	Exhibitions       []string        `json:"exhibitions,omitempty"`
	Sender            *Person         `json:"sender,omitempty"`
	Recipient         *Person         `json:"recipient,omitempty"`
}

// Collection is the owning-museum wrapper of the public JSON shape.
type Collection struct {
	Museum string `json:"museum,omitempty"`
}

// Image is one catalog scan or photograph of an artwork. Order within the
// document is significant and carried by Page.Order.
type Image struct {
	Image              string          `json:"image"`
	ImageSize          ImageSize       `json:"imagesize"`
	Page               Page            `json:"page"`
	GoogleVisionColors json.RawMessage `json:"googleVisionColors,omitempty"`
}

// ImageSize holds probed pixel dimensions and a format hint.
type ImageSize struct {
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Type   string `json:"type,omitempty"`
}

// Page describes where an image sits inside a bundle or sketchbook.
//
// Order is a pointer: an absent order is preserved as absent in storage and
// only treated as 0 when sorting.
type Page struct {
	Number int    `json:"number,omitempty"`
	Order  *int   `json:"order,omitempty"`
	Side   string `json:"side,omitempty"`
	ID     string `json:"id,omitempty"`
}

// Person is a letter correspondent. Person rows are shared between
// artworks referencing the same name and never deleted through this path.
type Person struct {
	Name      string `json:"name,omitempty"`
	BirthYear string `json:"birth_year,omitempty"`
	DeathYear string `json:"death_year,omitempty"`
}

// HasName reports whether the person carries any name-bearing data.
// Nameless persons never create rows.
func (p *Person) HasName() bool {
	return p != nil && strings.TrimSpace(p.Name) != ""
}

// OrderValue returns the page order for sorting, treating absent as 0.
func (img Image) OrderValue() int {
	if img.Page.Order == nil {
		return 0
	}
	return *img.Page.Order
}

// Exhibition is the decoded form of a "location|year" exhibition string.
type Exhibition struct {
	Location string
	Year     string
}

// String re-encodes the exhibition into its single-string API form.
func (e Exhibition) String() string {
	if e.Year == "" {
		return e.Location
	}
	return e.Location + "|" + e.Year
}

// exhibitionPattern splits "anything, then one separator character, then a
// 4-digit year". The pattern is deliberately permissive and ambiguous: a
// location whose name itself ends in four digits will be mis-split. This
// matches the historical catalog data and is preserved as a known
// limitation, not fixed.
var exhibitionPattern = regexp.MustCompile(`^(.*).(\d{4})$`)

// ParseExhibition decodes an exhibition string. Strings without a trailing
// year become a location-only exhibition.
func ParseExhibition(encoded string) Exhibition {
	match := exhibitionPattern.FindStringSubmatch(encoded)
	if match == nil {
		return Exhibition{Location: encoded}
	}
	return Exhibition{
		Location: strings.TrimSuffix(match[1], "|"),
		Year:     match[2],
	}
}

// legacyPrefixPattern matches a legacy public id: optional letters and a
// hyphen, then the numeric insert id (e.g. "PRIV-4844").
var legacyPrefixPattern = regexp.MustCompile(`^[A-Za-z]*-?(\d+)$`)

// ParseDocumentID extracts the numeric insert id from a public id, stripping
// any legacy alphabetic prefix. ok is false when the id carries no numeric
// part and must be looked up by name instead.
func ParseDocumentID(publicID string) (int, bool) {
	match := legacyPrefixPattern.FindStringSubmatch(publicID)
	if match == nil {
		return 0, false
	}
	insertID, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return insertID, true
}
