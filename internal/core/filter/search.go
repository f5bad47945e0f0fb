// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// Search index field naming. Facet types are indexed twice: a TAG field
// under the facet name for exact filtering, and a TEXT field under a kw_
// prefix for weighted free-text scoring.
const (
	SearchTextFieldPrefix = "kw_"
	searchNoMatch         = "@insert_id:[-1 -1]"
)

// ToSearch renders the plan into a RediSearch FT.SEARCH query string.
//
// The renderer only produces the filter expression; paging, sorting and
// returned fields are FT.SEARCH arguments supplied by the executor. Field
// weights for relevance live in the index schema, so a search word renders
// as one prefix term over every weighted field.
func ToSearch(plan Plan) string {
	var parts []string

	if !plan.IncludeDeleted {
		parts = append(parts, "@deleted:{false}")
	}
	if !plan.IncludeUnpublished {
		parts = append(parts, "@published:{true}")
	}

	for _, grp := range plan.Groups {
		ors := make([]string, 0, len(grp.Preds))
		for _, pred := range grp.Preds {
			ors = append(ors, searchPred(pred))
		}
		if len(ors) == 1 {
			parts = append(parts, ors[0])
		} else {
			parts = append(parts, "("+strings.Join(ors, "|")+")")
		}
	}

	for _, colorRange := range plan.Color {
		parts = append(parts, fmt.Sprintf("@color_%s:[%s %s]",
			colorRange.Channel, formatWeight(colorRange.Min), formatWeight(colorRange.Max)))
	}

	if len(plan.Words) > 0 {
		fields := make([]string, 0, len(ScoreFields))
		for _, scoreField := range ScoreFields {
			fields = append(fields, searchTextField(scoreField))
		}
		fieldGroup := strings.Join(fields, "|")

		for _, word := range plan.Words {
			parts = append(parts, fmt.Sprintf("@%s:(%s*)", fieldGroup, escapeToken(word)))
		}
	}

	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, " ")
}

func searchPred(pred Pred) string {
	switch pred.Op {
	case OpEqual:
		return "@" + pred.Field + ":{" + escapeTag(pred.Value) + "}"
	case OpPrefix:
		if pred.Field == FieldItemDateString {
			// Sortable dates are TAG-indexed; prefix match inside the tag.
			return "@" + pred.Field + ":{" + escapeTag(pred.Value) + "*}"
		}
		return "@" + pred.Field + ":(" + escapeToken(pred.Value) + "*)"
	case OpGTE:
		return "@" + FieldInsertID + ":[" + strconv.Itoa(int(pred.Min)) + " +inf]"
	case OpFacetAny:
		return "@" + pred.Field + ":{" + joinTags(pred.Values) + "}"
	case OpFacetNone:
		return "-@" + pred.Field + ":{" + joinTags(pred.Values) + "}"
	default:
		return searchNoMatch
	}
}

func searchTextField(scoreField ScoreField) string {
	if scoreField.Facet != "" {
		return SearchTextFieldPrefix + scoreField.Facet
	}
	return scoreField.Column
}

func joinTags(values []string) string {
	escaped := make([]string, 0, len(values))
	for _, value := range values {
		escaped = append(escaped, escapeTag(value))
	}
	return strings.Join(escaped, "|")
}

// escapeTag backslash-escapes the characters RediSearch treats as syntax
// inside TAG expressions.
func escapeTag(value string) string {
	var out strings.Builder
	for _, r := range value {
		if strings.ContainsRune(` ,.<>{}[]"':;!@#$%^&()-+=~|*`, r) {
			out.WriteByte('\\')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// escapeToken escapes a single free-text token for TEXT queries.
func escapeToken(value string) string {
	return escapeTag(value)
}
