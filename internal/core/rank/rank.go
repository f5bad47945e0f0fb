// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

/*
Package rank orders search matches.

The ordering key is categoryWeight + searchScore + jitter, descending. The
jitter is a pure function of (seed, insert_id), and the default seed is a
coarse time bucket, so the ordering of otherwise-tied documents is stable
within a bucket, reproducible when a caller pins the seed, and reshuffled
between buckets.
*/
package rank

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
	"time"

	"github.com/gu-cdh/arosenius-api/internal/search"
)

// SeedBucketSeconds is the width of the default seed's time bucket.
const SeedBucketSeconds = 2000

// JitterSpan is the exclusive upper bound of the jitter term. Slightly above
// 1 so jitter can flip ties between adjacent 0.1-weighted score steps.
const JitterSpan = 1.1

// Genre preference weights. Paintings surface first among ties, then
// drawings, then sketches.
var genreWeights = map[string]float64{
	"Målning":  3,
	"Teckning": 2,
	"Skiss":    1,
}

// DefaultSeed derives the ranking seed from the current coarse time bucket.
func DefaultSeed(now time.Time) int64 {
	return now.Unix() / SeedBucketSeconds
}

// CategoryWeight returns the preference weight of the best genre a document
// carries.
func CategoryWeight(genres []string) float64 {
	best := 0.0
	for _, genre := range genres {
		if w, ok := genreWeights[genre]; ok && w > best {
			best = w
		}
	}
	return best
}

// Jitter returns a deterministic pseudo-random value in [0, JitterSpan) for
// the given seed and document.
func Jitter(seed int64, insertID int) float64 {
	hash := fnv.New64a()

	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(insertID))
	_, _ = hash.Write(buf[:])

	// Top 53 bits give a uniform float in [0, 1).
	unit := float64(hash.Sum64()>>11) / float64(uint64(1)<<53)
	return unit * JitterSpan
}

// Key is the composite ordering key of a single match.
func Key(match search.Match, seed int64) float64 {
	return CategoryWeight(match.Genres) + match.SearchScore + Jitter(seed, match.InsertID)
}

// Apply sorts matches in place by their composite key, descending.
//
// No further tie-break: the jitter term's total ordering is the tie-break.
func Apply(matches []search.Match, seed int64) {
	keys := make(map[int]float64, len(matches))
	for _, match := range matches {
		keys[match.InsertID] = Key(match, seed)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return keys[matches[i].InsertID] > keys[matches[j].InsertID]
	})
}
