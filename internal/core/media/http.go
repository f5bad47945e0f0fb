// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gu-cdh/arosenius-api/internal/platform/respond"
	"github.com/gu-cdh/arosenius-api/internal/platform/validate"
)

// maxUploadBytes caps one multipart upload. Scans are large TIFF-derived
// jpegs, so the cap is generous.
const maxUploadBytes = 64 << 20

// Handler exposes the image directory endpoints.
type Handler struct {
	service *Service
}

// NewHandler wires the media routes to the service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Mount registers the public media routes. The file listing is public read
// data; the frontends use it to link scans to documents.
func (handler *Handler) Mount(router chi.Router) {
	router.Get("/image_file_list", handler.ImageFileList)
}

// MountAdmin registers the gated media routes.
func (handler *Handler) MountAdmin(router chi.Router) {
	router.Post("/upload", handler.Upload)
}

// Upload handles POST /admin/upload: one multipart file field per request.
func (handler *Handler) Upload(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxUploadBytes)

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, validate.RequiredError("file", "A file part is required"))
		return
	}
	defer file.Close()

	name, err := handler.service.SaveImage(header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, FileEntry{File: name})
}

// ImageFileList handles GET /admin/image_file_list.
func (handler *Handler) ImageFileList(writer http.ResponseWriter, request *http.Request) {
	files, err := handler.service.ListFiles()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, files)
}
