// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package artwork

import "context"

// # Artwork Data Access

// Neighbor is the reduced row returned by the admin record-browsing lookups.
type Neighbor struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	InsertID int    `json:"insert_id"`
}

// Repository defines the data access contract for the artwork domain.
type Repository interface {

	/*
		LoadDocuments assembles full documents for the given public ids.

		Legacy ids may carry an alphabetic prefix before the numeric insert
		id ("PRIV-4844"); the prefix is stripped before matching. Ids without
		a numeric part are looked up by name.

		Loads apply no visibility filtering: the search plan is the
		gatekeeper for unpublished and soft-deleted rows, and direct-id
		lookups intentionally see everything.

		Parameters:
		  - context: context.Context
		  - publicIDs: []string (Requested ids; result order follows this order)

		Returns:
		  - []*ArtworkDocument: Found documents, in requested-id order; missing ids are skipped
		  - error: Database retrieval failures
	*/
	LoadDocuments(context context.Context, publicIDs []string) ([]*ArtworkDocument, error)

	/*
		LoadByInsertIDs assembles full documents for the given insert ids,
		preserving the given order. Used to hydrate a ranked result page.
	*/
	LoadByInsertIDs(context context.Context, insertIDs []int) ([]*ArtworkDocument, error)

	/*
		Insert persists a new document with all of its child rows.

		Duplicate keyword or image rows are treated as already-desired state,
		not as errors.
	*/
	Insert(context context.Context, document *ArtworkDocument) error

	/*
		Update persists a changed document. The artwork row is written in
		full; images and keywords are reconciled through the diff engine so
		unchanged child rows are never touched.
	*/
	Update(context context.Context, document *ArtworkDocument) error

	/*
		HardDelete removes documents and their child rows permanently.
		Only the combine operation uses this; ordinary deletion is the
		soft-delete flag.
	*/
	HardDelete(context context.Context, insertIDs []int) error

	/*
		EnsurePerson resolves a correspondent to a person row id.

		Find-or-create: an existing row is returned as-is (its birth and
		death years are never overwritten), a missing row is inserted. A
		person without a name resolves to nil without creating anything.
	*/
	EnsurePerson(context context.Context, person *Person) (*int, error)

	/*
		ListImages returns the stored image rows of one artwork.
	*/
	ListImages(context context.Context, artworkID int) ([]ImageRow, error)

	/*
		UpdateImages reconciles stored images with the desired list using
		[DiffImages]. Calling it again with the same list writes nothing.
	*/
	UpdateImages(context context.Context, artworkID int, desired []ImageRow) error

	/*
		UpdateKeywords reconciles one facet type's stored values with the
		desired list using [DiffKeywords].
	*/
	UpdateKeywords(context context.Context, artworkID int, keywordType string, desired []string) error

	/*
		NextNeighbor returns the closest row above the given insert id.

		Returns:
		  - *Neighbor: nil when no such row exists
	*/
	NextNeighbor(context context.Context, insertID int) (*Neighbor, error)

	/*
		PrevNeighbor returns the closest row below the given insert id.
	*/
	PrevNeighbor(context context.Context, insertID int) (*Neighbor, error)

	/*
		HighestInsertID returns the maximum insert id, or 0 on an empty
		corpus.
	*/
	HighestInsertID(context context.Context) (int, error)
}
