// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package artwork

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/gu-cdh/arosenius-api/internal/platform/database/schema"
	"github.com/gu-cdh/arosenius-api/internal/platform/dberr"
)

// repository is the PostgreSQL implementation of [Repository].
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository wires the artwork repository to a connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// artworkColumns is the scan order used by scanArtwork.
func artworkColumns() []string {
	art := schema.ArchiveArtwork
	return []string{
		art.InsertID, art.Name, art.Title, art.TitleEN, art.Subtitle,
		art.Deleted, art.Published, art.Description, art.Museum,
		art.MuseumIntID, art.MuseumLink, art.ItemDateStr, art.ItemDateString,
		art.Size, art.TechniqueMaterial, art.Acquisition, art.Content,
		art.Inscription, art.Material, art.Creator, art.Signature,
		art.Literature, art.Reproductions, art.Bundle, art.Exhibitions,
		art.SenderID, art.RecipientID,
	}
}

func scanArtwork(row pgx.Rows) (ArtworkRow, error) {
	var artwork ArtworkRow
	err := row.Scan(
		&artwork.InsertID, &artwork.Name, &artwork.Title, &artwork.TitleEN,
		&artwork.Subtitle, &artwork.Deleted, &artwork.Published,
		&artwork.Description, &artwork.Museum, &artwork.MuseumIntID,
		&artwork.MuseumLink, &artwork.ItemDateStr, &artwork.ItemDateString,
		&artwork.Size, &artwork.TechniqueMaterial, &artwork.Acquisition,
		&artwork.Content, &artwork.Inscription, &artwork.Material,
		&artwork.Creator, &artwork.Signature, &artwork.Literature,
		&artwork.Reproductions, &artwork.Bundle, &artwork.Exhibitions,
		&artwork.SenderID, &artwork.RecipientID,
	)
	return artwork, err
}

// LoadDocuments implements [Repository].
func (repository *repository) LoadDocuments(ctx context.Context, publicIDs []string) ([]*ArtworkDocument, error) {

	// Split requested ids into numeric insert ids (legacy prefixes
	// stripped) and plain names.
	var insertIDs []int
	var names []string
	for _, publicID := range publicIDs {
		if insertID, ok := ParseDocumentID(publicID); ok {
			insertIDs = append(insertIDs, insertID)
		} else {
			names = append(names, publicID)
		}
	}

	art := schema.ArchiveArtwork
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = ANY($1) OR %s = ANY($2)",
		strings.Join(artworkColumns(), ", "), art.Table, art.InsertID, art.Name,
	)

	rows, err := repository.pool.Query(ctx, sql, insertIDs, names)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	byInsertID := make(map[int]ArtworkRow)
	byName := make(map[string]ArtworkRow)
	for rows.Next() {
		artwork, err := scanArtwork(rows)
		if err != nil {
			return nil, dberr.Wrap(err)
		}
		byInsertID[artwork.InsertID] = artwork
		byName[artwork.Name] = artwork
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err)
	}

	// Reorder per the caller's requested ids; unknown ids are skipped.
	ordered := make([]ArtworkRow, 0, len(publicIDs))
	seen := make(map[int]bool)
	for _, publicID := range publicIDs {
		var artwork ArtworkRow
		var found bool
		if insertID, ok := ParseDocumentID(publicID); ok {
			artwork, found = byInsertID[insertID]
		} else {
			artwork, found = byName[publicID]
		}
		if !found || seen[artwork.InsertID] {
			continue
		}
		seen[artwork.InsertID] = true
		ordered = append(ordered, artwork)
	}

	return repository.assembleAll(ctx, ordered)
}

// LoadByInsertIDs implements [Repository].
func (repository *repository) LoadByInsertIDs(ctx context.Context, insertIDs []int) ([]*ArtworkDocument, error) {
	art := schema.ArchiveArtwork
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = ANY($1)",
		strings.Join(artworkColumns(), ", "), art.Table, art.InsertID,
	)

	rows, err := repository.pool.Query(ctx, sql, insertIDs)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	byInsertID := make(map[int]ArtworkRow, len(insertIDs))
	for rows.Next() {
		artwork, err := scanArtwork(rows)
		if err != nil {
			return nil, dberr.Wrap(err)
		}
		byInsertID[artwork.InsertID] = artwork
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err)
	}

	ordered := make([]ArtworkRow, 0, len(insertIDs))
	for _, insertID := range insertIDs {
		if artwork, found := byInsertID[insertID]; found {
			ordered = append(ordered, artwork)
		}
	}

	return repository.assembleAll(ctx, ordered)
}

// assembleAll loads the child rows for a set of artworks in bulk and
// assembles full documents.
//
// One query per child table across all ids at once, never one per artwork;
// the images, keywords and persons queries are independent and run
// concurrently.
func (repository *repository) assembleAll(ctx context.Context, artworks []ArtworkRow) ([]*ArtworkDocument, error) {
	if len(artworks) == 0 {
		return []*ArtworkDocument{}, nil
	}

	artworkIDs := make([]int, 0, len(artworks))
	personIDs := make([]int, 0, 2*len(artworks))
	for _, artwork := range artworks {
		artworkIDs = append(artworkIDs, artwork.InsertID)
		if artwork.SenderID != nil {
			personIDs = append(personIDs, *artwork.SenderID)
		}
		if artwork.RecipientID != nil {
			personIDs = append(personIDs, *artwork.RecipientID)
		}
	}

	var (
		imagesByArtwork   map[int][]ImageRow
		keywordsByArtwork map[int][]KeywordRow
		personsByID       map[int]*Person
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		imagesByArtwork, err = repository.loadImages(groupCtx, artworkIDs)
		return err
	})
	group.Go(func() error {
		var err error
		keywordsByArtwork, err = repository.loadKeywords(groupCtx, artworkIDs)
		return err
	})
	group.Go(func() error {
		var err error
		personsByID, err = repository.loadPersons(groupCtx, personIDs)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	documents := make([]*ArtworkDocument, 0, len(artworks))
	for _, artwork := range artworks {
		var sender, recipient *Person
		if artwork.SenderID != nil {
			sender = personsByID[*artwork.SenderID]
		}
		if artwork.RecipientID != nil {
			recipient = personsByID[*artwork.RecipientID]
		}

		document, err := Assemble(artwork,
			imagesByArtwork[artwork.InsertID],
			keywordsByArtwork[artwork.InsertID],
			sender, recipient)
		if err != nil {
			return nil, fmt.Errorf("artwork: assemble %d: %w", artwork.InsertID, err)
		}
		documents = append(documents, document)
	}

	return documents, nil
}

func (repository *repository) loadImages(ctx context.Context, artworkIDs []int) (map[int][]ImageRow, error) {
	img := schema.ArchiveImage
	sql := fmt.Sprintf(
		"SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = ANY($1)",
		img.ArtworkID, img.Filename, img.Format, img.Width, img.Height,
		img.PageNumber, img.PageID, img.PageOrder, img.Side, img.Color,
		img.Table, img.ArtworkID,
	)

	rows, err := repository.pool.Query(ctx, sql, artworkIDs)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	grouped := make(map[int][]ImageRow)
	for rows.Next() {
		var image ImageRow
		err := rows.Scan(&image.ArtworkID, &image.Filename, &image.Format,
			&image.Width, &image.Height, &image.PageNumber, &image.PageID,
			&image.PageOrder, &image.Side, &image.Color)
		if err != nil {
			return nil, dberr.Wrap(err)
		}
		grouped[image.ArtworkID] = append(grouped[image.ArtworkID], image)
	}
	return grouped, dberr.Wrap(rows.Err())
}

func (repository *repository) loadKeywords(ctx context.Context, artworkIDs []int) (map[int][]KeywordRow, error) {
	kw := schema.ArchiveKeyword
	sql := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s",
		kw.ArtworkID, kw.Type, kw.Name, kw.Table, kw.ArtworkID, kw.ID,
	)

	rows, err := repository.pool.Query(ctx, sql, artworkIDs)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	grouped := make(map[int][]KeywordRow)
	for rows.Next() {
		var keyword KeywordRow
		if err := rows.Scan(&keyword.ArtworkID, &keyword.Type, &keyword.Name); err != nil {
			return nil, dberr.Wrap(err)
		}
		grouped[keyword.ArtworkID] = append(grouped[keyword.ArtworkID], keyword)
	}
	return grouped, dberr.Wrap(rows.Err())
}

func (repository *repository) loadPersons(ctx context.Context, personIDs []int) (map[int]*Person, error) {
	byID := make(map[int]*Person)
	if len(personIDs) == 0 {
		return byID, nil
	}

	person := schema.ArchivePerson
	sql := fmt.Sprintf(
		"SELECT %s, %s, COALESCE(%s, ''), COALESCE(%s, '') FROM %s WHERE %s = ANY($1)",
		person.ID, person.Name, person.BirthYear, person.DeathYear,
		person.Table, person.ID,
	)

	rows, err := repository.pool.Query(ctx, sql, personIDs)
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var loaded Person
		if err := rows.Scan(&id, &loaded.Name, &loaded.BirthYear, &loaded.DeathYear); err != nil {
			return nil, dberr.Wrap(err)
		}
		byID[id] = &loaded
	}
	return byID, dberr.Wrap(rows.Err())
}

// Insert implements [Repository].
func (repository *repository) Insert(ctx context.Context, document *ArtworkDocument) error {
	parts, err := Disassemble(document)
	if err != nil {
		return fmt.Errorf("artwork: disassemble: %w", err)
	}

	if parts.Artwork.SenderID, err = repository.EnsurePerson(ctx, document.Sender); err != nil {
		return err
	}
	if parts.Artwork.RecipientID, err = repository.EnsurePerson(ctx, document.Recipient); err != nil {
		return err
	}

	tx, err := repository.pool.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insertID, err := insertArtworkRow(ctx, tx, parts.Artwork)
	if err != nil {
		return err
	}

	for _, keyword := range parts.Keywords {
		if err := insertKeywordRow(ctx, tx, insertID, keyword); err != nil {
			return err
		}
	}
	for _, image := range parts.Images {
		if err := insertImageRow(ctx, tx, insertID, image); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return dberr.Wrap(err)
	}

	document.InsertID = insertID
	return nil
}

// insertArtworkRow writes the artwork row, letting the sequence assign the
// insert id when the document carries none.
func insertArtworkRow(ctx context.Context, tx pgx.Tx, artwork ArtworkRow) (int, error) {
	art := schema.ArchiveArtwork

	columns := []string{
		art.Name, art.Title, art.TitleEN, art.Subtitle, art.Deleted,
		art.Published, art.Description, art.Museum, art.MuseumIntID,
		art.MuseumLink, art.ItemDateStr, art.ItemDateString, art.Size,
		art.TechniqueMaterial, art.Acquisition, art.Content, art.Inscription,
		art.Material, art.Creator, art.Signature, art.Literature,
		art.Reproductions, art.Bundle, art.Exhibitions, art.SenderID,
		art.RecipientID,
	}
	values := []any{
		artwork.Name, artwork.Title, artwork.TitleEN, artwork.Subtitle,
		artwork.Deleted, artwork.Published, artwork.Description,
		artwork.Museum, artwork.MuseumIntID, artwork.MuseumLink,
		artwork.ItemDateStr, artwork.ItemDateString, artwork.Size,
		artwork.TechniqueMaterial, artwork.Acquisition, artwork.Content,
		artwork.Inscription, artwork.Material, artwork.Creator,
		artwork.Signature, artwork.Literature, artwork.Reproductions,
		artwork.Bundle, artwork.Exhibitions, artwork.SenderID,
		artwork.RecipientID,
	}

	if artwork.InsertID != 0 {
		columns = append(columns, art.InsertID)
		values = append(values, artwork.InsertID)
	}

	placeholders := make([]string, len(values))
	for i := range values {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		art.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "), art.InsertID,
	)

	var insertID int
	if err := tx.QueryRow(ctx, sql, values...).Scan(&insertID); err != nil {
		return 0, dberr.Wrap(err)
	}
	return insertID, nil
}

// insertKeywordRow inserts one facet value; a duplicate is desired state.
func insertKeywordRow(ctx context.Context, tx pgx.Tx, artworkID int, keyword KeywordRow) error {
	kw := schema.ArchiveKeyword
	sql := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) ON CONFLICT (%s, %s, %s) DO NOTHING",
		kw.Table, kw.ArtworkID, kw.Type, kw.Name,
		kw.ArtworkID, kw.Type, kw.Name,
	)
	if _, err := tx.Exec(ctx, sql, artworkID, keyword.Type, keyword.Name); err != nil {
		return dberr.Wrap(err)
	}
	return nil
}

func insertImageRow(ctx context.Context, tx pgx.Tx, artworkID int, image ImageRow) error {
	img := schema.ArchiveImage
	sql := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) "+
			"ON CONFLICT (%s, %s) DO NOTHING",
		img.Table, img.ArtworkID, img.Filename, img.Format, img.Width,
		img.Height, img.PageNumber, img.PageID, img.PageOrder, img.Side,
		img.Color, img.ColorHue, img.ColorSaturation, img.ColorLightness,
		img.ArtworkID, img.Filename,
	)
	_, err := tx.Exec(ctx, sql,
		artworkID, image.Filename, image.Format, image.Width, image.Height,
		image.PageNumber, image.PageID, image.PageOrder, image.Side,
		image.Color, image.Hue, image.Saturation, image.Lightness,
	)
	if err != nil {
		return dberr.Wrap(err)
	}
	return nil
}

// Update implements [Repository].
func (repository *repository) Update(ctx context.Context, document *ArtworkDocument) error {
	parts, err := Disassemble(document)
	if err != nil {
		return fmt.Errorf("artwork: disassemble: %w", err)
	}

	if parts.Artwork.SenderID, err = repository.EnsurePerson(ctx, document.Sender); err != nil {
		return err
	}
	if parts.Artwork.RecipientID, err = repository.EnsurePerson(ctx, document.Recipient); err != nil {
		return err
	}

	art := schema.ArchiveArtwork
	sql := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, "+
			"%s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = $12, %s = $13, "+
			"%s = $14, %s = $15, %s = $16, %s = $17, %s = $18, %s = $19, %s = $20, "+
			"%s = $21, %s = $22, %s = $23, %s = $24, %s = $25, %s = $26, %s = now() "+
			"WHERE %s = $27",
		art.Table, art.Name, art.Title, art.TitleEN, art.Subtitle, art.Deleted,
		art.Published, art.Description, art.Museum, art.MuseumIntID,
		art.MuseumLink, art.ItemDateStr, art.ItemDateString, art.Size,
		art.TechniqueMaterial, art.Acquisition, art.Content, art.Inscription,
		art.Material, art.Creator, art.Signature, art.Literature,
		art.Reproductions, art.Bundle, art.Exhibitions, art.SenderID,
		art.RecipientID, art.UpdatedAt, art.InsertID,
	)

	tag, err := repository.pool.Exec(ctx, sql,
		parts.Artwork.Name, parts.Artwork.Title, parts.Artwork.TitleEN,
		parts.Artwork.Subtitle, parts.Artwork.Deleted, parts.Artwork.Published,
		parts.Artwork.Description, parts.Artwork.Museum,
		parts.Artwork.MuseumIntID, parts.Artwork.MuseumLink,
		parts.Artwork.ItemDateStr, parts.Artwork.ItemDateString,
		parts.Artwork.Size, parts.Artwork.TechniqueMaterial,
		parts.Artwork.Acquisition, parts.Artwork.Content,
		parts.Artwork.Inscription, parts.Artwork.Material,
		parts.Artwork.Creator, parts.Artwork.Signature,
		parts.Artwork.Literature, parts.Artwork.Reproductions,
		parts.Artwork.Bundle, parts.Artwork.Exhibitions,
		parts.Artwork.SenderID, parts.Artwork.RecipientID,
		document.InsertID,
	)
	if err != nil {
		return dberr.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := repository.UpdateImages(ctx, document.InsertID, parts.Images); err != nil {
		return err
	}

	grouped := keywordValuesByType(parts.Keywords)
	for _, keywordType := range keywordTypes() {
		if err := repository.UpdateKeywords(ctx, document.InsertID, keywordType, grouped[keywordType]); err != nil {
			return err
		}
	}

	return nil
}

// HardDelete implements [Repository].
func (repository *repository) HardDelete(ctx context.Context, insertIDs []int) error {
	if len(insertIDs) == 0 {
		return nil
	}

	tx, err := repository.pool.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	kw := schema.ArchiveKeyword
	img := schema.ArchiveImage
	art := schema.ArchiveArtwork

	statements := []string{
		fmt.Sprintf("DELETE FROM %s WHERE %s = ANY($1)", kw.Table, kw.ArtworkID),
		fmt.Sprintf("DELETE FROM %s WHERE %s = ANY($1)", img.Table, img.ArtworkID),
		fmt.Sprintf("DELETE FROM %s WHERE %s = ANY($1)", art.Table, art.InsertID),
	}
	for _, statement := range statements {
		if _, err := tx.Exec(ctx, statement, insertIDs); err != nil {
			return dberr.Wrap(err)
		}
	}

	return dberr.Wrap(tx.Commit(ctx))
}

// EnsurePerson implements [Repository].
func (repository *repository) EnsurePerson(ctx context.Context, person *Person) (*int, error) {
	if !person.HasName() {
		return nil, nil
	}

	personTable := schema.ArchivePerson
	selectSQL := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		personTable.ID, personTable.Table, personTable.Name,
	)

	var id int
	err := repository.pool.QueryRow(ctx, selectSQL, person.Name).Scan(&id)
	if err == nil {
		// Existing rows win: stored birth/death years are never refreshed
		// through this path.
		return &id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, dberr.Wrap(err)
	}

	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) ON CONFLICT (%s) DO NOTHING RETURNING %s",
		personTable.Table, personTable.Name, personTable.BirthYear,
		personTable.DeathYear, personTable.Name, personTable.ID,
	)

	err = repository.pool.QueryRow(ctx, insertSQL,
		person.Name, nullIfEmpty(person.BirthYear), nullIfEmpty(person.DeathYear),
	).Scan(&id)
	if err == nil {
		return &id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, dberr.Wrap(err)
	}

	// Lost a concurrent insert race; the row exists now.
	if err := repository.pool.QueryRow(ctx, selectSQL, person.Name).Scan(&id); err != nil {
		return nil, dberr.Wrap(err)
	}
	return &id, nil
}

// ListImages implements [Repository].
func (repository *repository) ListImages(ctx context.Context, artworkID int) ([]ImageRow, error) {
	grouped, err := repository.loadImages(ctx, []int{artworkID})
	if err != nil {
		return nil, err
	}
	return grouped[artworkID], nil
}

// UpdateImages implements [Repository].
func (repository *repository) UpdateImages(ctx context.Context, artworkID int, desired []ImageRow) error {
	existing, err := repository.ListImages(ctx, artworkID)
	if err != nil {
		return err
	}

	diff := DiffImages(existing, desired)
	if diff.Empty() {
		return nil
	}

	tx, err := repository.pool.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	img := schema.ArchiveImage

	if len(diff.Deletes) > 0 {
		deleteSQL := fmt.Sprintf(
			"DELETE FROM %s WHERE %s = $1 AND %s = ANY($2)",
			img.Table, img.ArtworkID, img.Filename,
		)
		if _, err := tx.Exec(ctx, deleteSQL, artworkID, diff.Deletes); err != nil {
			return dberr.Wrap(err)
		}
	}

	updateSQL := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, "+
			"%s = $7, %s = $8, %s = $9, %s = $10, %s = $11 WHERE %s = $12 AND %s = $13",
		img.Table, img.Format, img.Width, img.Height, img.PageNumber,
		img.PageID, img.PageOrder, img.Side, img.Color, img.ColorHue,
		img.ColorSaturation, img.ColorLightness, img.ArtworkID, img.Filename,
	)
	for _, image := range diff.Updates {
		_, err := tx.Exec(ctx, updateSQL,
			image.Format, image.Width, image.Height, image.PageNumber,
			image.PageID, image.PageOrder, image.Side, image.Color,
			image.Hue, image.Saturation, image.Lightness,
			artworkID, image.Filename,
		)
		if err != nil {
			return dberr.Wrap(err)
		}
	}

	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) "+
			"ON CONFLICT (%s, %s) DO NOTHING",
		img.Table, img.ArtworkID, img.Filename, img.Format, img.Width,
		img.Height, img.PageNumber, img.PageID, img.PageOrder, img.Side,
		img.Color, img.ColorHue, img.ColorSaturation, img.ColorLightness,
		img.ArtworkID, img.Filename,
	)
	for _, image := range diff.Inserts {
		_, err := tx.Exec(ctx, insertSQL,
			artworkID, image.Filename, image.Format, image.Width, image.Height,
			image.PageNumber, image.PageID, image.PageOrder, image.Side,
			image.Color, image.Hue, image.Saturation, image.Lightness,
		)
		if err != nil {
			return dberr.Wrap(err)
		}
	}

	return dberr.Wrap(tx.Commit(ctx))
}

// UpdateKeywords implements [Repository].
func (repository *repository) UpdateKeywords(ctx context.Context, artworkID int, keywordType string, desired []string) error {
	kw := schema.ArchiveKeyword

	selectSQL := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 AND %s = $2",
		kw.Name, kw.Table, kw.ArtworkID, kw.Type,
	)
	rows, err := repository.pool.Query(ctx, selectSQL, artworkID, keywordType)
	if err != nil {
		return dberr.Wrap(err)
	}

	var existing []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return dberr.Wrap(err)
		}
		existing = append(existing, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return dberr.Wrap(err)
	}

	diff := DiffKeywords(existing, desired)
	if diff.Empty() {
		return nil
	}

	if len(diff.Deletes) > 0 {
		deleteSQL := fmt.Sprintf(
			"DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = ANY($3)",
			kw.Table, kw.ArtworkID, kw.Type, kw.Name,
		)
		if _, err := repository.pool.Exec(ctx, deleteSQL, artworkID, keywordType, diff.Deletes); err != nil {
			return dberr.Wrap(err)
		}
	}

	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) ON CONFLICT (%s, %s, %s) DO NOTHING",
		kw.Table, kw.ArtworkID, kw.Type, kw.Name,
		kw.ArtworkID, kw.Type, kw.Name,
	)
	for _, name := range diff.Inserts {
		if _, err := repository.pool.Exec(ctx, insertSQL, artworkID, keywordType, name); err != nil {
			return dberr.Wrap(err)
		}
	}

	return nil
}

// NextNeighbor implements [Repository].
func (repository *repository) NextNeighbor(ctx context.Context, insertID int) (*Neighbor, error) {
	return repository.neighbor(ctx, insertID, ">", "ASC")
}

// PrevNeighbor implements [Repository].
func (repository *repository) PrevNeighbor(ctx context.Context, insertID int) (*Neighbor, error) {
	return repository.neighbor(ctx, insertID, "<", "DESC")
}

func (repository *repository) neighbor(ctx context.Context, insertID int, cmp, direction string) (*Neighbor, error) {
	art := schema.ArchiveArtwork
	sql := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s WHERE %s %s $1 ORDER BY %s %s LIMIT 1",
		art.Name, art.Title, art.InsertID, art.Table, art.InsertID, cmp,
		art.InsertID, direction,
	)

	var neighbor Neighbor
	err := repository.pool.QueryRow(ctx, sql, insertID).Scan(&neighbor.ID, &neighbor.Title, &neighbor.InsertID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	return &neighbor, nil
}

// HighestInsertID implements [Repository].
func (repository *repository) HighestInsertID(ctx context.Context) (int, error) {
	art := schema.ArchiveArtwork
	sql := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) FROM %s", art.InsertID, art.Table)

	var highest int
	if err := repository.pool.QueryRow(ctx, sql).Scan(&highest); err != nil {
		return 0, dberr.Wrap(err)
	}
	return highest, nil
}

func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
