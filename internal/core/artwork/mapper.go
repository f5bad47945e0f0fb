// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package artwork

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/gu-cdh/arosenius-api/internal/core/filter"
)

// ArtworkRow is the flat relational form of a document.
type ArtworkRow struct {
	InsertID          int
	Name              string
	Title             string
	TitleEN           string
	Subtitle          string
	Deleted           bool
	Published         bool
	Description       string
	Museum            string
	MuseumIntID       string // "|"-joined external identifiers
	MuseumLink        string
	ItemDateStr       string
	ItemDateString    string
	Size              []byte // opaque JSON
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
	Exhibitions       []byte // JSON array of {location, year}
	SenderID          *int
	RecipientID       *int
}

// KeywordRow is one facet value of one artwork.
type KeywordRow struct {
	ArtworkID int
	Type      string
	Name      string
}

// ImageRow is the flat relational form of one image.
type ImageRow struct {
	ArtworkID  int
	Filename   string
	Format     string
	Width      int
	Height     int
	PageNumber int
	PageID     string
	PageOrder  *int
	Side       string
	Color      []byte // dominant color as JSON {red, green, blue}
	Hue        *float64
	Saturation *float64
	Lightness  *float64
}

// Disassembled is the full relational decomposition of one document.
// Person references stay as documents here; the store resolves them to ids
// through its find-or-create path.
type Disassembled struct {
	Artwork  ArtworkRow
	Keywords []KeywordRow
	Images   []ImageRow
}

// facetFields pairs each keyword type with its document accessor.
var facetFields = []struct {
	keywordType string
	get         func(*ArtworkDocument) []string
}{
	{filter.FacetType, func(d *ArtworkDocument) []string { return d.Type }},
	{filter.FacetGenre, func(d *ArtworkDocument) []string { return d.Genre }},
	{filter.FacetTag, func(d *ArtworkDocument) []string { return d.Tags }},
	{filter.FacetPerson, func(d *ArtworkDocument) []string { return d.Persons }},
	{filter.FacetPlace, func(d *ArtworkDocument) []string { return d.Places }},
	{filter.FacetSeries, func(d *ArtworkDocument) []string { return d.Series }},
}

// keywordTypes lists every stored facet type.
func keywordTypes() []string {
	return filter.AllFacets
}

// keywordValuesByType groups keyword rows into per-type value lists.
func keywordValuesByType(keywords []KeywordRow) map[string][]string {
	grouped := make(map[string][]string)
	for _, keyword := range keywords {
		grouped[keyword.Type] = append(grouped[keyword.Type], keyword.Name)
	}
	return grouped
}

// exhibitionJSON is the stored form of one exhibition.
type exhibitionJSON struct {
	Location string `json:"location"`
	Year     string `json:"year"`
}

// visionColor is one entry of the googleVisionColors array.
type visionColor struct {
	Color rgbColor `json:"color"`
	Score float64  `json:"score"`
}

type rgbColor struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// Disassemble flattens a document into relational rows: structured fields
// are serialized, facets explode into one keyword row per value, and each
// image's dominant color is reduced to its top-scored entry.
func Disassemble(doc *ArtworkDocument) (Disassembled, error) {
	row := ArtworkRow{
		InsertID:          doc.InsertID,
		Name:              doc.ID,
		Title:             doc.Title,
		TitleEN:           doc.TitleEN,
		Subtitle:          doc.Subtitle,
		Deleted:           doc.Deleted,
		Published:         doc.Published,
		Description:       doc.Description,
		Museum:            doc.Collection.Museum,
		MuseumIntID:       joinPipe(doc.MuseumIntID),
		MuseumLink:        doc.MuseumLink,
		ItemDateStr:       doc.ItemDateStr,
		ItemDateString:    doc.ItemDateString,
		Size:              doc.Size,
		TechniqueMaterial: doc.TechniqueMaterial,
		Acquisition:       doc.Acquisition,
		Content:           doc.Content,
		Inscription:       doc.Inscription,
		Material:          doc.Material,
		Creator:           doc.Creator,
		Signature:         doc.Signature,
		Literature:        doc.Literature,
		Reproductions:     doc.Reproductions,
		Bundle:            doc.Bundle,
	}

	if len(doc.Exhibitions) > 0 {
		decoded := make([]exhibitionJSON, 0, len(doc.Exhibitions))
		for _, encoded := range doc.Exhibitions {
			exhibition := ParseExhibition(encoded)
			decoded = append(decoded, exhibitionJSON{
				Location: exhibition.Location,
				Year:     exhibition.Year,
			})
		}
		serialized, err := json.Marshal(decoded)
		if err != nil {
			return Disassembled{}, err
		}
		row.Exhibitions = serialized
	}

	result := Disassembled{Artwork: row}

	for _, facet := range facetFields {
		for _, name := range facet.get(doc) {
			if name == "" {
				continue
			}
			result.Keywords = append(result.Keywords, KeywordRow{
				ArtworkID: doc.InsertID,
				Type:      facet.keywordType,
				Name:      name,
			})
		}
	}

	for _, img := range doc.Images {
		imageRow, err := disassembleImage(doc.InsertID, img)
		if err != nil {
			return Disassembled{}, err
		}
		result.Images = append(result.Images, imageRow)
	}

	return result, nil
}

func disassembleImage(artworkID int, img Image) (ImageRow, error) {
	row := ImageRow{
		ArtworkID:  artworkID,
		Filename:   img.Image,
		Format:     img.ImageSize.Type,
		Width:      img.ImageSize.Width,
		Height:     img.ImageSize.Height,
		PageNumber: img.Page.Number,
		PageID:     img.Page.ID,
		PageOrder:  img.Page.Order,
		Side:       img.Page.Side,
	}

	if len(img.GoogleVisionColors) == 0 {
		return row, nil
	}

	var colors []visionColor
	if err := json.Unmarshal(img.GoogleVisionColors, &colors); err != nil {
		return ImageRow{}, err
	}
	if len(colors) == 0 {
		return row, nil
	}

	// Keep only the top-scored color.
	sort.SliceStable(colors, func(i, j int) bool { return colors[i].Score > colors[j].Score })
	dominant := colors[0].Color

	serialized, err := json.Marshal(dominant)
	if err != nil {
		return ImageRow{}, err
	}
	row.Color = serialized

	hue, saturation, lightness := rgbToHSL(dominant.Red, dominant.Green, dominant.Blue)
	row.Hue = &hue
	row.Saturation = &saturation
	row.Lightness = &lightness

	return row, nil
}

// Assemble is the inverse of [Disassemble]: it combines an artwork row, its
// child rows and its resolved correspondents into one document.
//
// Images are ordered by their stored page order ascending; an absent order
// sorts as 0 but stays absent in the assembled document.
func Assemble(row ArtworkRow, images []ImageRow, keywords []KeywordRow, sender, recipient *Person) (*ArtworkDocument, error) {
	doc := &ArtworkDocument{
		InsertID:          row.InsertID,
		ID:                row.Name,
		Title:             row.Title,
		TitleEN:           row.TitleEN,
		Subtitle:          row.Subtitle,
		Deleted:           row.Deleted,
		Published:         row.Published,
		Description:       row.Description,
		MuseumIntID:       splitPipe(row.MuseumIntID),
		Collection:        Collection{Museum: row.Museum},
		MuseumLink:        row.MuseumLink,
		ItemDateStr:       row.ItemDateStr,
		ItemDateString:    row.ItemDateString,
		Size:              row.Size,
		TechniqueMaterial: row.TechniqueMaterial,
		Acquisition:       row.Acquisition,
		Content:           row.Content,
		Inscription:       row.Inscription,
		Material:          row.Material,
		Creator:           row.Creator,
		Signature:         row.Signature,
		Literature:        row.Literature,
		Reproductions:     row.Reproductions,
		Bundle:            row.Bundle,
		Sender:            orEmptyPerson(sender),
		Recipient:         orEmptyPerson(recipient),
	}

	if len(row.Exhibitions) > 0 {
		var decoded []exhibitionJSON
		if err := json.Unmarshal(row.Exhibitions, &decoded); err != nil {
			return nil, err
		}
		for _, e := range decoded {
			doc.Exhibitions = append(doc.Exhibitions, Exhibition{Location: e.Location, Year: e.Year}.String())
		}
	}

	grouped := keywordValuesByType(keywords)
	doc.Type = grouped[filter.FacetType]
	doc.Genre = grouped[filter.FacetGenre]
	doc.Tags = grouped[filter.FacetTag]
	doc.Persons = grouped[filter.FacetPerson]
	doc.Places = grouped[filter.FacetPlace]
	doc.Series = grouped[filter.FacetSeries]

	ordered := make([]ImageRow, len(images))
	copy(ordered, images)
	sort.SliceStable(ordered, func(i, j int) bool {
		return orderValue(ordered[i]) < orderValue(ordered[j])
	})

	for _, imageRow := range ordered {
		img, err := assembleImage(imageRow)
		if err != nil {
			return nil, err
		}
		doc.Images = append(doc.Images, img)
	}

	return doc, nil
}

func assembleImage(row ImageRow) (Image, error) {
	img := Image{
		Image: row.Filename,
		ImageSize: ImageSize{
			Width:  row.Width,
			Height: row.Height,
			Type:   row.Format,
		},
		Page: Page{
			Number: row.PageNumber,
			Order:  row.PageOrder,
			Side:   row.Side,
			ID:     row.PageID,
		},
	}

	if len(row.Color) > 0 {
		var dominant rgbColor
		if err := json.Unmarshal(row.Color, &dominant); err != nil {
			return Image{}, err
		}
		wrapped, err := json.Marshal([]visionColor{{Color: dominant, Score: 1}})
		if err != nil {
			return Image{}, err
		}
		img.GoogleVisionColors = wrapped
	}

	return img, nil
}

func orderValue(row ImageRow) int {
	if row.PageOrder == nil {
		return 0
	}
	return *row.PageOrder
}

// orEmptyPerson mirrors the API contract: a missing correspondent is an
// empty object, not an absent field.
func orEmptyPerson(p *Person) *Person {
	if p == nil {
		return &Person{}
	}
	return p
}

func joinPipe(values []string) string {
	return strings.Join(values, "|")
}

func splitPipe(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, "|")
}

// rgbToHSL converts 0-255 RGB channels to hue (0-360) and saturation/
// lightness percentages, matching the ranges the color filters query.
func rgbToHSL(red, green, blue float64) (hue, saturation, lightness float64) {
	r := red / 255
	g := green / 255
	b := blue / 255

	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}

	lightness = (max + min) / 2

	if max == min {
		return 0, 0, lightness * 100
	}

	delta := max - min
	if lightness > 0.5 {
		saturation = delta / (2 - max - min)
	} else {
		saturation = delta / (max + min)
	}

	switch max {
	case r:
		hue = (g - b) / delta
		if g < b {
			hue += 6
		}
	case g:
		hue = (b-r)/delta + 2
	default:
		hue = (r-g)/delta + 4
	}
	hue *= 60

	return hue, saturation * 100, lightness * 100
}
