// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package artwork

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffImages_ClassifiesWrites(t *testing.T) {
	one := 1
	two := 2

	existing := []ImageRow{
		{Filename: "kept", Width: 800, Height: 600, PageOrder: &one},
		{Filename: "resized", Width: 100, Height: 100},
		{Filename: "removed", Width: 640, Height: 480},
	}
	desired := []ImageRow{
		{Filename: "kept", Width: 800, Height: 600, PageOrder: &one},
		{Filename: "resized", Width: 1600, Height: 1200},
		{Filename: "added", Width: 300, Height: 200, PageOrder: &two},
	}

	diff := DiffImages(existing, desired)

	require.Len(t, diff.Inserts, 1)
	assert.Equal(t, "added", diff.Inserts[0].Filename)
	require.Len(t, diff.Updates, 1)
	assert.Equal(t, "resized", diff.Updates[0].Filename)
	assert.Equal(t, []string{"removed"}, diff.Deletes)
}

func TestDiffImages_UnchangedListWritesNothing(t *testing.T) {
	order := 3
	rows := []ImageRow{
		{Filename: "a", Width: 10, Height: 20, PageOrder: &order, Color: []byte(`{"red":1}`)},
		{Filename: "b", Side: "verso"},
	}

	same := make([]ImageRow, len(rows))
	copy(same, rows)

	assert.True(t, DiffImages(rows, same).Empty())
}

func TestDiffImages_PageOrderChangeIsAnUpdate(t *testing.T) {
	one := 1
	two := 2

	diff := DiffImages(
		[]ImageRow{{Filename: "a", PageOrder: &one}},
		[]ImageRow{{Filename: "a", PageOrder: &two}},
	)

	require.Len(t, diff.Updates, 1)
	assert.Empty(t, diff.Inserts)
	assert.Empty(t, diff.Deletes)
}

func TestDiffImages_NilOrderDiffersFromZero(t *testing.T) {
	zero := 0

	diff := DiffImages(
		[]ImageRow{{Filename: "a"}},
		[]ImageRow{{Filename: "a", PageOrder: &zero}},
	)

	require.Len(t, diff.Updates, 1)
}

func TestDiffKeywords_SymmetricDifference(t *testing.T) {
	diff := DiffKeywords(
		[]string{"akvarell", "barn", "trädgård"},
		[]string{"barn", "trädgård", "porträtt"},
	)

	assert.Equal(t, []string{"porträtt"}, diff.Inserts)
	assert.Equal(t, []string{"akvarell"}, diff.Deletes)
}

func TestDiffKeywords_SkipsEmptyAndDuplicateDesired(t *testing.T) {
	diff := DiffKeywords(nil, []string{"barn", "", "barn"})

	assert.Equal(t, []string{"barn"}, diff.Inserts)
	assert.Empty(t, diff.Deletes)
}

func TestDiffKeywords_EqualListsWriteNothing(t *testing.T) {
	assert.True(t, DiffKeywords([]string{"a", "b"}, []string{"a", "b"}).Empty())
	assert.True(t, DiffKeywords(nil, nil).Empty())
}
