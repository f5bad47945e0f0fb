// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package schema

// ArchiveKeywordTable represents the 'archive.keyword' table
type ArchiveKeywordTable struct {
	Table     string
	ID        string
	ArtworkID string
	Type      string
	Name      string
}

// ArchiveKeyword is the schema definition for archive.keyword.
// (artwork_id, type, name) carries a unique constraint.
var ArchiveKeyword = ArchiveKeywordTable{
	Table:     "archive.keyword",
	ID:        "id",
	ArtworkID: "artwork_id",
	Type:      "type",
	Name:      "name",
}

func (t ArchiveKeywordTable) Columns() []string {
	return []string{t.ID, t.ArtworkID, t.Type, t.Name}
}
