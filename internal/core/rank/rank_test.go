// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package rank_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gu-cdh/arosenius-api/internal/core/rank"
	"github.com/gu-cdh/arosenius-api/internal/search"
)

func TestCategoryWeight(t *testing.T) {
	assert.Equal(t, 3.0, rank.CategoryWeight([]string{"Målning"}))
	assert.Equal(t, 2.0, rank.CategoryWeight([]string{"Teckning"}))
	assert.Equal(t, 1.0, rank.CategoryWeight([]string{"Skiss"}))
	assert.Equal(t, 0.0, rank.CategoryWeight([]string{"Akvarell"}))
	assert.Equal(t, 0.0, rank.CategoryWeight(nil))

	// The best genre wins when a document carries several.
	assert.Equal(t, 3.0, rank.CategoryWeight([]string{"Skiss", "Målning"}))
}

func TestJitter_Bounds(t *testing.T) {
	for id := 1; id < 2000; id++ {
		j := rank.Jitter(42, id)
		require.GreaterOrEqual(t, j, 0.0)
		require.Less(t, j, rank.JitterSpan)
	}
}

func TestJitter_DeterministicPerSeed(t *testing.T) {
	assert.Equal(t, rank.Jitter(7, 4844), rank.Jitter(7, 4844))
	assert.NotEqual(t, rank.Jitter(7, 4844), rank.Jitter(8, 4844))
	assert.NotEqual(t, rank.Jitter(7, 4844), rank.Jitter(7, 4845))
}

func TestDefaultSeed_StableWithinBucket(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)

	assert.Equal(t, rank.DefaultSeed(base), rank.DefaultSeed(base.Add(time.Second)))
	assert.NotEqual(t, rank.DefaultSeed(base), rank.DefaultSeed(base.Add(rank.SeedBucketSeconds*2*time.Second)))
}

func TestApply_SameSeedSameOrder(t *testing.T) {
	build := func() []search.Match {
		return []search.Match{
			{InsertID: 1, Genres: []string{"Skiss"}},
			{InsertID: 2, Genres: []string{"Skiss"}},
			{InsertID: 3, Genres: []string{"Skiss"}},
			{InsertID: 4, Genres: []string{"Skiss"}},
		}
	}

	first := build()
	second := build()
	rank.Apply(first, 99)
	rank.Apply(second, 99)

	assert.Equal(t, first, second)
}

func TestApply_ScoreGapsBeyondJitterHold(t *testing.T) {
	// Key intervals are disjoint here (gaps exceed the jitter span), so the
	// order is fixed regardless of seed.
	matches := []search.Match{
		{InsertID: 12},
		{InsertID: 11, Genres: []string{"Målning"}},
		{InsertID: 10, SearchScore: 10},
	}

	rank.Apply(matches, 1)

	assert.Equal(t, 10, matches[0].InsertID)
	assert.Equal(t, 11, matches[1].InsertID)
	assert.Equal(t, 12, matches[2].InsertID)
}
