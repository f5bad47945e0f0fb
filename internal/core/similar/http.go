// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package similar

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gu-cdh/arosenius-api/internal/core/artwork"
	requestutil "github.com/gu-cdh/arosenius-api/internal/platform/request"
	"github.com/gu-cdh/arosenius-api/internal/platform/respond"
)

// Handler exposes the similarity lookup.
type Handler struct {
	service *Service
}

// NewHandler wires the similarity route to its service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Mount registers the similarity route.
func (handler *Handler) Mount(router chi.Router) {
	router.Get("/similar/{id}", handler.SimilarDocuments)
}

// similarResponse matches the document list envelope of the search surface.
type similarResponse struct {
	Documents []*artwork.ArtworkDocument `json:"documents"`
}

// SimilarDocuments handles GET /similar/{id}. count bounds the result list.
func (handler *Handler) SimilarDocuments(writer http.ResponseWriter, request *http.Request) {
	limit, _ := strconv.Atoi(request.URL.Query().Get("count"))

	documents, err := handler.service.Similar(request.Context(), requestutil.Param(request, "id"), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if documents == nil {
		documents = []*artwork.ArtworkDocument{}
	}
	respond.OK(writer, similarResponse{Documents: documents})
}
