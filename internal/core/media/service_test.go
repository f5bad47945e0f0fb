// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFilename(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"scan.jpeg", "scan.jpg"},
		{"scan.JPEG", "scan.jpg"},
		{"scan.Jpg", "scan.jpg"},
		{"scan.png", "scan.png"},
		{"priv-4844.tif", "priv-4844.tif"},
		{"../evil/scan.jpeg", "scan.jpg"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.out, NormalizeFilename(tc.in), tc.in)
	}
}

func TestSaveImage_WritesNormalizedFile(t *testing.T) {
	dir := t.TempDir()
	service := NewService(dir)

	name, err := service.SaveImage("Lillan.JPEG", strings.NewReader("bytes"))
	require.NoError(t, err)
	assert.Equal(t, "lillan.jpg", strings.ToLower(name))

	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(content))
}

func TestSaveImage_RejectsEmptyName(t *testing.T) {
	service := NewService(t.TempDir())

	_, err := service.SaveImage("", strings.NewReader("bytes"))
	require.Error(t, err)
}

func TestListFiles_SkipsDirectoriesAndExtensionless(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "thumbs"), 0o755))

	service := NewService(dir)
	files, err := service.ListFiles()
	require.NoError(t, err)

	assert.Equal(t, []FileEntry{{File: "a.jpg"}, {File: "b.png"}}, files)
}
