// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package artwork

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gu-cdh/arosenius-api/internal/core/filter"
	"github.com/gu-cdh/arosenius-api/internal/platform/apperr"
	"github.com/gu-cdh/arosenius-api/internal/platform/constants"
	requestutil "github.com/gu-cdh/arosenius-api/internal/platform/request"
	"github.com/gu-cdh/arosenius-api/internal/platform/respond"
	"github.com/gu-cdh/arosenius-api/pkg/pagination"
	"github.com/gu-cdh/arosenius-api/pkg/query"
)

// Handler exposes the artwork endpoints.
type Handler struct {
	service *Service
}

// NewHandler wires the HTTP surface to the artwork service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// MountPublic registers the read-only catalog routes.
func (handler *Handler) MountPublic(router chi.Router) {
	router.Get("/documents", handler.ListDocuments)
	router.Get("/document/{id}", handler.GetDocument)
	router.Get("/next/{insert_id}", handler.NextDocument)
	router.Get("/prev/{insert_id}", handler.PrevDocument)
	router.Get("/highest_insert_id", handler.HighestInsertID)
}

// MountAdmin registers the editing routes. The admin gate middleware wraps
// the router these mount on.
func (handler *Handler) MountAdmin(router chi.Router) {
	router.Get("/documents", handler.ListDocumentsAdmin)
	router.Get("/document/{id}", handler.GetDocument)
	router.Put("/document/{id}", handler.CreateDocument)
	router.Post("/document/{id}", handler.UpdateDocument)
	router.Put("/documents/combine", handler.CombineDocuments)
}

// listResponse is the search page envelope. Total counts every match, not
// just the returned page.
type listResponse struct {
	Total     int                `json:"total"`
	Documents []*ArtworkDocument `json:"documents"`
}

// documentsResponse is the explicit-ids envelope, which carries no total.
type documentsResponse struct {
	Documents []*ArtworkDocument `json:"documents"`
}

// documentResponse wraps a single lookup. A missing document serializes to
// an empty object, matching the legacy contract of answering 200 either way.
type documentResponse struct {
	Data *ArtworkDocument `json:"data,omitempty"`
}

/*
ListDocuments handles GET /documents: the faceted catalog search.

Besides the filter parameters it reads page/count/showAll for paging, sort
for deterministic ordering, seed to pin the ranking shuffle, simple=true to
strip image lists, and ids to bypass search entirely and load the named
documents in the requested order.
*/
func (handler *Handler) ListDocuments(writer http.ResponseWriter, request *http.Request) {
	handler.listDocuments(writer, request, false)
}

// ListDocumentsAdmin handles GET /admin/documents. Identical to the public
// search except unpublished and soft-deleted records are always included.
func (handler *Handler) ListDocumentsAdmin(writer http.ResponseWriter, request *http.Request) {
	handler.listDocuments(writer, request, true)
}

func (handler *Handler) listDocuments(writer http.ResponseWriter, request *http.Request, includeHidden bool) {
	values := request.URL.Query()
	simple := values.Get("simple") == "true"

	if ids := values.Get("ids"); ids != "" {
		documents, err := handler.service.LoadDocuments(request.Context(), query.Values(ids))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, documentsResponse{Documents: simplify(documents, simple)})
		return
	}

	params := filter.ParamsFromQuery(values)
	if includeHidden {
		params.ShowUnpublished = true
		params.ShowDeleted = true
	}

	options := SearchOptions{
		Sort: values.Get("sort"),
		Page: pagination.FromRequest(request),
	}
	if raw := values.Get("seed"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			options.Seed = &seed
		}
	}

	result, err := handler.service.Search(request.Context(), params, options)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, listResponse{
		Total:     result.Total,
		Documents: simplify(result.Documents, simple),
	})
}

// GetDocument handles GET /document/{id}.
func (handler *Handler) GetDocument(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, documentResponse{Data: document})
}

// CreateDocument handles PUT /admin/document/{id}. The route id becomes the
// document's public id.
func (handler *Handler) CreateDocument(writer http.ResponseWriter, request *http.Request) {
	var document ArtworkDocument
	if err := requestutil.DecodeJSON(request, &document); err != nil {
		respond.Error(writer, request, err)
		return
	}
	document.ID = requestutil.Param(request, "id")

	if err := handler.service.Create(request.Context(), &document); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"response": "created"})
}

// UpdateDocument handles POST /admin/document/{id}. A body without an
// insert id is resolved through the route id first.
func (handler *Handler) UpdateDocument(writer http.ResponseWriter, request *http.Request) {
	var document ArtworkDocument
	if err := requestutil.DecodeJSON(request, &document); err != nil {
		respond.Error(writer, request, err)
		return
	}
	publicID := requestutil.Param(request, "id")
	document.ID = publicID

	if document.InsertID == 0 {
		existing, err := handler.service.Get(request.Context(), publicID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		if existing == nil {
			respond.Error(writer, request, apperr.NotFound("Document"))
			return
		}
		document.InsertID = existing.InsertID
	}

	if err := handler.service.Update(request.Context(), &document); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"response": "updated"})
}

// combineRequest is the body of PUT /admin/documents/combine. Documents are
// public ids, in the same form the ids= bulk fetch takes. SelectedDocument
// names the surviving record; empty means the first listed.
type combineRequest struct {
	Documents        []string `json:"documents"`
	SelectedDocument string   `json:"selectedDocument"`
}

// CombineDocuments handles PUT /admin/documents/combine.
func (handler *Handler) CombineDocuments(writer http.ResponseWriter, request *http.Request) {
	var payload combineRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Combine(request.Context(), payload.Documents, payload.SelectedDocument)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// NextDocument handles GET /next/{insert_id}.
func (handler *Handler) NextDocument(writer http.ResponseWriter, request *http.Request) {
	handler.neighbor(writer, request, handler.service.Next)
}

// PrevDocument handles GET /prev/{insert_id}.
func (handler *Handler) PrevDocument(writer http.ResponseWriter, request *http.Request) {
	handler.neighbor(writer, request, handler.service.Prev)
}

// neighbor answers a record-browsing lookup. The end of the corpus is data
// to the admin frontend, not an HTTP failure, so it arrives as 200 with an
// error field.
func (handler *Handler) neighbor(writer http.ResponseWriter, request *http.Request, lookup func(context.Context, int) (*Neighbor, error)) {
	insertID, err := strconv.Atoi(requestutil.Param(request, "insert_id"))
	if err != nil {
		respond.OK(writer, map[string]string{constants.FieldError: "not found"})
		return
	}

	found, err := lookup(request.Context(), insertID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if found == nil {
		respond.OK(writer, map[string]string{constants.FieldError: "not found"})
		return
	}

	respond.OK(writer, found)
}

// HighestInsertID handles GET /highest_insert_id.
func (handler *Handler) HighestInsertID(writer http.ResponseWriter, request *http.Request) {
	highest, err := handler.service.HighestInsertID(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"highest_insert_id": highest})
}

// simplify strips the heavy image lists when the client asked for the
// lightweight document shape. Empty result sets still serialize as arrays.
func simplify(documents []*ArtworkDocument, simple bool) []*ArtworkDocument {
	if documents == nil {
		return []*ArtworkDocument{}
	}
	if !simple {
		return documents
	}
	for _, document := range documents {
		document.Images = nil
	}
	return documents
}
