// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package artwork

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	// Decoders for the formats present in the image directory.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// headerProbeBytes is the window read on the first probe attempt. Image
// headers normally sit well inside it.
const headerProbeBytes = 256 * 1024

// SizeProber reads pixel dimensions from files in the image directory.
type SizeProber struct {
	basePath string
}

// NewSizeProber returns a prober rooted at the given image directory.
func NewSizeProber(basePath string) *SizeProber {
	return &SizeProber{basePath: basePath}
}

// Probe returns the dimensions and format of the named file.
//
// The header window is tried first; some scans carry metadata segments
// longer than the window, so a failed header probe retries with the whole
// file before giving up.
func (prober *SizeProber) Probe(filename string) (ImageSize, error) {
	path := filepath.Join(prober.basePath, filename)

	size, err := decodeConfigFile(path, headerProbeBytes)
	if err == nil {
		return size, nil
	}

	return decodeConfigFile(path, 0)
}

// decodeConfigFile decodes the image config from at most limit bytes of the
// file; limit 0 reads the whole file.
func decodeConfigFile(path string, limit int64) (ImageSize, error) {
	file, err := os.Open(path)
	if err != nil {
		return ImageSize{}, fmt.Errorf("probe image size: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if limit > 0 {
		reader = io.LimitReader(file, limit)
	}

	config, format, err := image.DecodeConfig(reader)
	if err != nil {
		return ImageSize{}, fmt.Errorf("probe image size %s: %w", filepath.Base(path), err)
	}

	if format == "jpeg" {
		format = "jpg"
	}

	return ImageSize{Width: config.Width, Height: config.Height, Type: format}, nil
}
