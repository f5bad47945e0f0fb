// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

/*
Package media manages the flat image directory of the archive: uploads from
the admin frontend and the file listing it uses to link scans to documents.

Image processing itself (resizing, color extraction) happens offline; this
package only moves bytes and names.
*/
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gu-cdh/arosenius-api/internal/platform/validate"
	"github.com/gu-cdh/arosenius-api/pkg/slice"
)

// jpegExtPattern matches a trailing jpeg extension in any casing.
var jpegExtPattern = regexp.MustCompile(`(?i)\.jpe?g$`)

// FileEntry is one listed image file.
type FileEntry struct {
	File string `json:"file"`
}

// Service reads and writes the image directory.
type Service struct {
	imageDir string
}

// NewService constructs the media service over the given image directory.
func NewService(imageDir string) *Service {
	return &Service{imageDir: imageDir}
}

// NormalizeFilename strips any path components and folds a jpeg extension
// to the canonical ".jpg" the rest of the pipeline expects.
func NormalizeFilename(filename string) string {
	name := filepath.Base(filename)
	return jpegExtPattern.ReplaceAllString(name, ".jpg")
}

/*
SaveImage stores an uploaded image under its normalized filename.

Returns:
  - string: The stored filename
  - error: Validation failure for an empty name, or the write error
*/
func (service *Service) SaveImage(filename string, content io.Reader) (string, error) {
	name := NormalizeFilename(filename)

	validator := &validate.Validator{}
	err := validator.
		Required("file", name).
		Custom("file", name == "." || name == string(filepath.Separator), "A filename is required").
		Err()
	if err != nil {
		return "", err
	}

	target, err := os.Create(filepath.Join(service.imageDir, name))
	if err != nil {
		return "", fmt.Errorf("media: create %s: %w", name, err)
	}
	defer target.Close()

	if _, err := io.Copy(target, content); err != nil {
		return "", fmt.Errorf("media: write %s: %w", name, err)
	}
	return name, nil
}

/*
ListFiles returns the image directory's files, sorted by name. Entries
without an extension are skipped; the directory carries working files next
to the images.
*/
func (service *Service) ListFiles() ([]FileEntry, error) {
	entries, err := os.ReadDir(service.imageDir)
	if err != nil {
		return nil, fmt.Errorf("media: list %s: %w", service.imageDir, err)
	}

	images := slice.Filter(entries, func(entry os.DirEntry) bool {
		return !entry.IsDir() && strings.Contains(entry.Name(), ".")
	})

	files := slice.Map(images, func(entry os.DirEntry) FileEntry {
		return FileEntry{File: entry.Name()}
	})
	if files == nil {
		// An empty directory still lists as [] on the wire.
		files = []FileEntry{}
	}
	return files, nil
}
