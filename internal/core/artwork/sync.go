// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package artwork

// ImageDiff is the minimal set of writes reconciling stored images with a
// desired list. Rows whose filename and fields are unchanged appear nowhere.
type ImageDiff struct {
	Inserts []ImageRow
	Updates []ImageRow
	Deletes []string // filenames
}

// Empty reports whether applying the diff would write nothing.
func (d ImageDiff) Empty() bool {
	return len(d.Inserts) == 0 && len(d.Updates) == 0 && len(d.Deletes) == 0
}

// KeywordDiff is the minimal insert/delete set for one facet type.
type KeywordDiff struct {
	Inserts []string
	Deletes []string
}

// Empty reports whether applying the diff would write nothing.
func (d KeywordDiff) Empty() bool {
	return len(d.Inserts) == 0 && len(d.Deletes) == 0
}

// DiffImages computes the writes needed to make stored images match the
// desired list, keyed by filename.
//
// A filename present in both lists is updated in place only when a field
// actually changed; matching rows are never deleted and reinserted, so
// unchanged images keep their stored state untouched.
func DiffImages(existing, desired []ImageRow) ImageDiff {
	var diff ImageDiff

	current := make(map[string]ImageRow, len(existing))
	for _, row := range existing {
		current[row.Filename] = row
	}

	wanted := make(map[string]bool, len(desired))
	for _, row := range desired {
		wanted[row.Filename] = true

		stored, exists := current[row.Filename]
		if !exists {
			diff.Inserts = append(diff.Inserts, row)
			continue
		}
		if !imageFieldsEqual(stored, row) {
			diff.Updates = append(diff.Updates, row)
		}
	}

	for _, row := range existing {
		if !wanted[row.Filename] {
			diff.Deletes = append(diff.Deletes, row.Filename)
		}
	}

	return diff
}

// DiffKeywords computes the symmetric insert/delete set for one facet type.
// A keyword row has no mutable fields besides its name, so values present
// in both lists are trivially untouched.
func DiffKeywords(existing, desired []string) KeywordDiff {
	var diff KeywordDiff

	current := make(map[string]bool, len(existing))
	for _, name := range existing {
		current[name] = true
	}

	wanted := make(map[string]bool, len(desired))
	for _, name := range desired {
		if name == "" || wanted[name] {
			continue
		}
		wanted[name] = true
		if !current[name] {
			diff.Inserts = append(diff.Inserts, name)
		}
	}

	for _, name := range existing {
		if !wanted[name] {
			diff.Deletes = append(diff.Deletes, name)
		}
	}

	return diff
}

func imageFieldsEqual(a, b ImageRow) bool {
	return a.Format == b.Format &&
		a.Width == b.Width &&
		a.Height == b.Height &&
		a.PageNumber == b.PageNumber &&
		a.PageID == b.PageID &&
		intPtrEqual(a.PageOrder, b.PageOrder) &&
		a.Side == b.Side &&
		string(a.Color) == string(b.Color)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
