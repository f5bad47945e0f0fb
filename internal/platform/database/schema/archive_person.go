// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package schema

// ArchivePersonTable represents the 'archive.person' table
type ArchivePersonTable struct {
	Table     string
	ID        string
	Name      string
	BirthYear string
	DeathYear string
}

// ArchivePerson is the schema definition for archive.person.
// Names are unique; letter correspondents are deduplicated by name.
var ArchivePerson = ArchivePersonTable{
	Table:     "archive.person",
	ID:        "id",
	Name:      "name",
	BirthYear: "birth_year",
	DeathYear: "death_year",
}

func (t ArchivePersonTable) Columns() []string {
	return []string{t.ID, t.Name, t.BirthYear, t.DeathYear}
}
