// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package artwork

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gu-cdh/arosenius-api/internal/core/filter"
	"github.com/gu-cdh/arosenius-api/internal/core/rank"
	"github.com/gu-cdh/arosenius-api/internal/platform/apperr"
	"github.com/gu-cdh/arosenius-api/internal/platform/ctxutil"
	"github.com/gu-cdh/arosenius-api/internal/platform/validate"
	"github.com/gu-cdh/arosenius-api/internal/search"
	"github.com/gu-cdh/arosenius-api/pkg/pagination"
)

// combineFailedMessage is surfaced verbatim by the admin frontend.
const combineFailedMessage = "Unable to combine documents, have they been combined before?"

// Indexer mirrors saved documents into the standalone search index.
// It is nil-able at the service: a deployment running on the relational
// backend alone carries no index.
type Indexer interface {
	IndexDocument(ctx context.Context, insertID int, fields map[string]any) error
	RemoveDocument(ctx context.Context, insertID int) error
}

// Service orchestrates the artwork domain: search with ranking and paging,
// document loads, admin writes and the duplicate-record merge.
type Service struct {
	repository Repository
	executor   search.Executor
	indexer    Indexer
	prober     *SizeProber
}

/*
NewService constructs the artwork service.

Parameters:
  - repository: Repository (Document persistence)
  - executor: search.Executor (Active search backend)
  - indexer: Indexer (Search index mirror; nil when no index is configured)
  - prober: *SizeProber (Image dimension probing; nil disables probing)
*/
func NewService(repository Repository, executor search.Executor, indexer Indexer, prober *SizeProber) *Service {
	return &Service{
		repository: repository,
		executor:   executor,
		indexer:    indexer,
		prober:     prober,
	}
}

// SearchOptions control ordering and paging of one search.
//
// A nil Seed means the coarse time-bucket default; a pinned seed reproduces
// an earlier shuffle exactly.
type SearchOptions struct {
	Sort string
	Seed *int64
	Page pagination.Params
}

// SearchResult is one hydrated page of an ordered match list.
type SearchResult struct {
	Total     int
	Documents []*ArtworkDocument
}

/*
Search compiles the filter parameters, runs them against the active backend,
orders the matches and hydrates the requested page.

Without an explicit sort the ranking policy applies: category weight plus
relevance plus seeded jitter, descending. With a whitelisted sort field the
backend orders deterministically and ranking is skipped.

Returns:
  - *SearchResult: Total match count and the documents of the requested page
  - error: Backend or hydration failures
*/
func (service *Service) Search(ctx context.Context, params filter.Params, options SearchOptions) (*SearchResult, error) {
	plan := filter.Compile(params)

	sortField := resolveSort(options.Sort, params)
	matches, err := service.executor.Search(ctx, plan, sortField)
	if err != nil {
		return nil, err
	}

	if sortField == "" {
		seed := rank.DefaultSeed(time.Now())
		if options.Seed != nil {
			seed = *options.Seed
		}
		rank.Apply(matches, seed)
	}

	from, to := options.Page.Bounds(len(matches))
	insertIDs := make([]int, 0, to-from)
	for _, match := range matches[from:to] {
		insertIDs = append(insertIDs, match.InsertID)
	}

	documents, err := service.repository.LoadByInsertIDs(ctx, insertIDs)
	if err != nil {
		return nil, err
	}

	return &SearchResult{Total: len(matches), Documents: documents}, nil
}

// resolveSort validates a requested sort field against the whitelist. A
// title sort under an active series filter switches to length-aware title
// ordering.
func resolveSort(requested string, params filter.Params) string {
	if requested == "" {
		return ""
	}
	if _, ok := filter.SortColumn(requested); !ok {
		return ""
	}
	if requested == "title" && params.Series != "" {
		return filter.SortTitleNatural
	}
	return requested
}

// LoadDocuments loads full documents for explicitly requested public ids,
// in requested order. Missing ids are skipped, not errors.
func (service *Service) LoadDocuments(ctx context.Context, publicIDs []string) ([]*ArtworkDocument, error) {
	return service.repository.LoadDocuments(ctx, publicIDs)
}

// Get loads one document by public id. A missing document returns
// (nil, nil); the legacy contract answers such lookups with 200 and an
// absent body rather than 404.
func (service *Service) Get(ctx context.Context, publicID string) (*ArtworkDocument, error) {
	documents, err := service.repository.LoadDocuments(ctx, []string{publicID})
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, nil
	}
	return documents[0], nil
}

// Create persists a new document and mirrors it into the search index.
func (service *Service) Create(ctx context.Context, document *ArtworkDocument) error {
	validator := &validate.Validator{}
	if err := validator.Required("id", document.ID).Err(); err != nil {
		return err
	}

	if err := service.prepareImages(document); err != nil {
		return err
	}
	if err := service.repository.Insert(ctx, document); err != nil {
		return err
	}
	service.mirror(ctx, document)
	return nil
}

// Update persists a changed document and mirrors it into the search index.
func (service *Service) Update(ctx context.Context, document *ArtworkDocument) error {
	if err := service.prepareImages(document); err != nil {
		return err
	}
	if err := service.repository.Update(ctx, document); err != nil {
		return err
	}
	service.mirror(ctx, document)
	return nil
}

/*
Combine merges duplicate records into one.

The documents arrive as public ids, the same form the ids= bulk fetch takes;
legacy prefixes and plain names both resolve. The selected document survives
(the first requested one when no selection is given). Images of all requested
documents are pooled, ordered by page order and deduplicated by filename onto
the survivor; the other documents are removed permanently. When any requested
id cannot be loaded the merge aborts before writing anything.

Returns:
  - *CombineResult: Surviving insert id, merged image count and removed
    insert ids
  - error: [apperr.Operation] when a requested document is missing
*/
func (service *Service) Combine(ctx context.Context, publicIDs []string, keepID string) (*CombineResult, error) {
	validator := &validate.Validator{}
	err := validator.
		Custom("documents", len(publicIDs) < 2, "At least two documents are required").
		Err()
	if err != nil {
		return nil, err
	}

	documents, err := service.repository.LoadDocuments(ctx, publicIDs)
	if err != nil {
		return nil, err
	}
	if len(documents) < 2 || len(documents) != len(publicIDs) {
		return nil, apperr.Operation(combineFailedMessage)
	}

	keep := documents[0]
	for _, document := range documents {
		if keepID != "" && document.ID == keepID {
			keep = document
		}
	}

	var combined []Image
	seen := make(map[string]bool)
	for _, document := range documents {
		for _, img := range document.Images {
			if img.Image == "" || seen[img.Image] {
				continue
			}
			seen[img.Image] = true
			combined = append(combined, img)
		}
	}
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].OrderValue() < combined[j].OrderValue()
	})

	rows := make([]ImageRow, 0, len(combined))
	for _, img := range combined {
		row, err := disassembleImage(keep.InsertID, img)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if err := service.repository.UpdateImages(ctx, keep.InsertID, rows); err != nil {
		return nil, err
	}

	deleted := make([]int, 0, len(documents)-1)
	for _, document := range documents {
		if document.InsertID != keep.InsertID {
			deleted = append(deleted, document.InsertID)
		}
	}
	if err := service.repository.HardDelete(ctx, deleted); err != nil {
		return nil, err
	}

	keep.Images = combined
	service.mirror(ctx, keep)
	if service.indexer != nil {
		for _, insertID := range deleted {
			if err := service.indexer.RemoveDocument(ctx, insertID); err != nil {
				ctxutil.GetLogger(ctx).Warn("search index removal failed",
					"insert_id", insertID, "error", err)
			}
		}
	}

	return &CombineResult{Keep: keep.InsertID, Images: len(rows), Deleted: deleted}, nil
}

// CombineResult reports one duplicate-record merge.
type CombineResult struct {
	Keep    int   `json:"keep"`
	Images  int   `json:"images"`
	Deleted []int `json:"deleted"`
}

// Next returns the closest record above the given insert id, nil at the end.
func (service *Service) Next(ctx context.Context, insertID int) (*Neighbor, error) {
	return service.repository.NextNeighbor(ctx, insertID)
}

// Prev returns the closest record below the given insert id, nil at the start.
func (service *Service) Prev(ctx context.Context, insertID int) (*Neighbor, error) {
	return service.repository.PrevNeighbor(ctx, insertID)
}

// HighestInsertID returns the top of the insert id sequence, 0 when empty.
func (service *Service) HighestInsertID(ctx context.Context) (int, error) {
	return service.repository.HighestInsertID(ctx)
}

// prepareImages drops entries without a filename, orders the rest by page
// order and probes missing pixel sizes from the image directory. A failed
// probe fails the save: a document must never persist an image it cannot
// measure.
func (service *Service) prepareImages(document *ArtworkDocument) error {
	images := make([]Image, 0, len(document.Images))
	for _, img := range document.Images {
		if strings.TrimSpace(img.Image) == "" {
			continue
		}
		images = append(images, img)
	}

	sort.SliceStable(images, func(i, j int) bool {
		return images[i].OrderValue() < images[j].OrderValue()
	})

	for i := range images {
		if images[i].ImageSize.Width > 0 || service.prober == nil {
			continue
		}
		size, err := service.prober.Probe(images[i].Image + ".jpg")
		if err != nil {
			return apperr.Operation("Unable to read image " + images[i].Image)
		}
		images[i].ImageSize = size
	}

	document.Images = images
	return nil
}

// mirror pushes a saved document into the search index when one is wired.
// The relational row is the source of truth; an index miss is logged and
// repaired by reindexing, never returned to the caller.
func (service *Service) mirror(ctx context.Context, document *ArtworkDocument) {
	if service.indexer == nil {
		return
	}
	if err := service.indexer.IndexDocument(ctx, document.InsertID, indexFields(document)); err != nil {
		ctxutil.GetLogger(ctx).Warn("search index update failed",
			"insert_id", document.InsertID, "error", err)
	}
}

// indexFields flattens a document into the field layout of the search index.
// Facets appear twice: a TAG field for filtering and a weighted text field
// for relevance. The index carries one dominant color per document, taken
// from the first image that has one.
func indexFields(document *ArtworkDocument) map[string]any {
	fields := map[string]any{
		"insert_id":        document.InsertID,
		"name":             document.ID,
		"deleted":          strconv.FormatBool(document.Deleted),
		"published":        strconv.FormatBool(document.Published),
		"item_date_string": document.ItemDateString,
		"title":            document.Title,
		"description":      document.Description,
		"museum":           document.Collection.Museum,
		"museum_int_id":    strings.Join(document.MuseumIntID, " "),
		"material":         document.Material,
		"bundle":           document.Bundle,
	}

	for _, facet := range facetFields {
		values := facet.get(document)
		fields[facet.keywordType] = strings.Join(values, search.TagSeparator)
		fields[filter.SearchTextFieldPrefix+facet.keywordType] = strings.Join(values, " ")
	}

	for _, img := range document.Images {
		row, err := disassembleImage(document.InsertID, img)
		if err != nil || row.Hue == nil {
			continue
		}
		fields["color_hue"] = *row.Hue
		fields["color_saturation"] = *row.Saturation
		fields["color_lightness"] = *row.Lightness
		break
	}

	return fields
}
