// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package facet

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gu-cdh/arosenius-api/internal/core/filter"
	"github.com/gu-cdh/arosenius-api/internal/platform/respond"
)

// Handler exposes the aggregated listing endpoints.
type Handler struct {
	service *Service
}

// NewHandler wires the listing routes to the facet service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Mount registers the listing routes. All of them are public reads.
func (handler *Handler) Mount(router chi.Router) {
	router.Get("/museums", handler.ListMuseums)
	router.Get("/types", handler.keywordList(filter.FacetType))
	router.Get("/tags", handler.keywordList(filter.FacetTag))
	router.Get("/tags/cloud", handler.TagCloud)
	router.Get("/persons", handler.keywordList(filter.FacetPerson))
	router.Get("/places", handler.keywordList(filter.FacetPlace))
	router.Get("/genres", handler.keywordList(filter.FacetGenre))
	router.Get("/series", handler.keywordList(filter.FacetSeries))
	router.Get("/pagetypes", handler.PageTypes)
	router.Get("/exhibitions", handler.Exhibitions)
	router.Get("/autocomplete", handler.Autocomplete)
	router.Get("/year_range", handler.YearRange)
}

// keywordList builds the handler for one facet type's value listing.
// sort=doc_count switches from alphabetical to most-frequent-first.
func (handler *Handler) keywordList(keywordType string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		byCount := request.URL.Query().Get("sort") == "doc_count"

		entries, err := handler.service.ListKeywords(request.Context(), keywordType, byCount)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, orEmpty(entries))
	}
}

// ListMuseums handles GET /museums.
func (handler *Handler) ListMuseums(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.ListMuseums(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, orEmpty(entries))
}

// TagCloud handles GET /tags/cloud.
func (handler *Handler) TagCloud(writer http.ResponseWriter, request *http.Request) {
	cloud, err := handler.service.TagCloud(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, orEmpty(cloud))
}

// PageTypes handles GET /pagetypes.
func (handler *Handler) PageTypes(writer http.ResponseWriter, request *http.Request) {
	values, err := handler.service.PageSides(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, orEmpty(values))
}

// Exhibitions handles GET /exhibitions.
func (handler *Handler) Exhibitions(writer http.ResponseWriter, request *http.Request) {
	values, err := handler.service.Exhibitions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, orEmpty(values))
}

// Autocomplete handles GET /autocomplete?search=.
func (handler *Handler) Autocomplete(writer http.ResponseWriter, request *http.Request) {
	completions, err := handler.service.Complete(request.Context(), request.URL.Query().Get("search"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, completions)
}

// YearRange handles GET /year_range. It accepts the same filter parameters
// as /documents and counts matches per 4-character year bucket.
func (handler *Handler) YearRange(writer http.ResponseWriter, request *http.Request) {
	counts, err := handler.service.YearRange(request.Context(), filter.ParamsFromQuery(request.URL.Query()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, orEmpty(counts))
}

// orEmpty keeps empty listings serializing as [] rather than null.
func orEmpty[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
