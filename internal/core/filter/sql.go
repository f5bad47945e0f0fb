// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gu-cdh/arosenius-api/internal/platform/database/schema"
)

// SortTitleNatural orders titles by length before lexicographic order, so
// numbered sheets inside a series ("blad 2" before "blad 10") read in catalog
// order. The service selects it for title sorts under a series filter.
const SortTitleNatural = "title_natural"

// SortColumn maps a requested sort field to its artwork column. Only the
// whitelisted deterministic sort fields are accepted.
func SortColumn(field string) (string, bool) {
	art := schema.ArchiveArtwork
	switch field {
	case "insert_id":
		return art.InsertID, true
	case "title":
		return art.Title, true
	case "item_date_string":
		return art.ItemDateString, true
	default:
		return "", false
	}
}

// ToSQL renders the plan into a single Postgres query with positional
// arguments.
//
// The result set has four columns per match: insert_id, name, the free-text
// relevance score (0 when the plan has no search words), and the aggregated
// genre names used for category weighting.
//
// Facet scoring uses one aggregated LEFT JOIN per facet type; facet equality
// filters use EXISTS subqueries. A facet type is therefore never joined more
// than once, regardless of how many parameters touch it.
func ToSQL(plan Plan, sortField string) (string, []any) {
	builder := newSQLBuilder()
	art := schema.ArchiveArtwork

	where, scoreExpr := builder.build(plan)
	genreAlias := builder.facetJoin(FacetGenre)

	var sql strings.Builder
	sql.WriteString("SELECT a." + art.InsertID + ", a." + art.Name + ", ")
	sql.WriteString(scoreExpr + " AS search_score, ")
	sql.WriteString("COALESCE(" + genreAlias + ".names, '') AS genre_names")
	sql.WriteString(" FROM " + art.Table + " a")

	for _, join := range builder.joins {
		sql.WriteString(" " + join)
	}

	if len(where) > 0 {
		sql.WriteString(" WHERE " + strings.Join(where, " AND "))
	}

	if sortField == SortTitleNatural {
		sql.WriteString(" ORDER BY length(a." + art.Title + ") ASC, a." + art.Title + " ASC")
	} else if column, ok := SortColumn(sortField); ok {
		sql.WriteString(" ORDER BY a." + column + " ASC")
	}

	return sql.String(), builder.args
}

// ToYearCountSQL renders the plan into a per-year document count query,
// bucketing on the 4-character year prefix of the sortable date string.
// Ranking does not apply; the relevance expression is dropped.
func ToYearCountSQL(plan Plan) (string, []any) {
	builder := newSQLBuilder()
	art := schema.ArchiveArtwork

	where, _ := builder.build(plan)
	yearExpr := "substring(a." + art.ItemDateString + ", 1, 4)"
	where = append(where, "a."+art.ItemDateString+" <> ''")

	var sql strings.Builder
	sql.WriteString("SELECT " + yearExpr + " AS year, count(*) AS doc_count")
	sql.WriteString(" FROM " + art.Table + " a")

	for _, join := range builder.joins {
		sql.WriteString(" " + join)
	}

	sql.WriteString(" WHERE " + strings.Join(where, " AND "))
	sql.WriteString(" GROUP BY " + yearExpr)
	sql.WriteString(" ORDER BY year ASC")

	return sql.String(), builder.args
}

// sqlBuilder accumulates positional arguments and facet joins while the
// plan is rendered.
type sqlBuilder struct {
	args   []any
	joins  []string
	joined map[string]string
}

func newSQLBuilder() *sqlBuilder {
	return &sqlBuilder{joined: make(map[string]string)}
}

// arg registers a positional argument and returns its placeholder.
func (builder *sqlBuilder) arg(value any) string {
	builder.args = append(builder.args, value)
	return "$" + strconv.Itoa(len(builder.args))
}

// build renders the shared WHERE clauses and the relevance expression.
func (builder *sqlBuilder) build(plan Plan) ([]string, string) {
	art := schema.ArchiveArtwork
	var where []string

	if !plan.IncludeDeleted {
		where = append(where, "a."+art.Deleted+" = FALSE")
	}
	if !plan.IncludeUnpublished {
		where = append(where, "a."+art.Published+" = TRUE")
	}

	for _, grp := range plan.Groups {
		var ors []string
		for _, pred := range grp.Preds {
			ors = append(ors, builder.pred(pred, grp.CaseSensitive))
		}
		where = append(where, "("+strings.Join(ors, " OR ")+")")
	}

	if len(plan.Color) > 0 {
		where = append(where, builder.colorExists(plan.Color))
	}

	var scoreTerms []string
	for _, word := range plan.Words {
		clause, terms := builder.word(word)
		where = append(where, clause)
		scoreTerms = append(scoreTerms, terms...)
	}

	scoreExpr := "0.0"
	if len(scoreTerms) > 0 {
		scoreExpr = "(" + strings.Join(scoreTerms, " + ") + ")"
	}

	return where, scoreExpr
}

// facetJoin adds the aggregated keyword join for a facet type, once.
func (builder *sqlBuilder) facetJoin(facet string) string {
	if alias, ok := builder.joined[facet]; ok {
		return alias
	}

	kw := schema.ArchiveKeyword
	art := schema.ArchiveArtwork
	alias := "kw_" + facet

	builder.joins = append(builder.joins, fmt.Sprintf(
		"LEFT JOIN (SELECT %s, string_agg(%s, ' | ') AS names FROM %s WHERE %s = %s GROUP BY %s) %s ON %s.%s = a.%s",
		kw.ArtworkID, kw.Name, kw.Table, kw.Type, builder.arg(facet), kw.ArtworkID,
		alias, alias, kw.ArtworkID, art.InsertID,
	))
	builder.joined[facet] = alias

	return alias
}

func (builder *sqlBuilder) pred(pred Pred, caseSensitive bool) string {
	art := schema.ArchiveArtwork

	switch pred.Op {
	case OpEqual:
		return builder.scalar(pred.Field, caseSensitive) + " = " + builder.arg(pred.Value)
	case OpPrefix:
		return builder.scalar(pred.Field, caseSensitive) + " LIKE " + builder.arg(EscapeLike(pred.Value)+"%")
	case OpGTE:
		return "a." + art.InsertID + " >= " + builder.arg(int(pred.Min))
	case OpFacetAny:
		return builder.facetExists(pred, caseSensitive, false)
	case OpFacetNone:
		return builder.facetExists(pred, caseSensitive, true)
	default:
		return "FALSE"
	}
}

// scalar renders a logical scalar field, lowercased unless the group is
// case-sensitive.
func (builder *sqlBuilder) scalar(field string, caseSensitive bool) string {
	art := schema.ArchiveArtwork

	var column string
	switch field {
	case FieldMuseum:
		column = art.Museum
	case FieldBundle:
		column = art.Bundle
	case FieldItemDateString:
		column = art.ItemDateString
	default:
		column = field
	}

	if caseSensitive {
		return "a." + column
	}
	return "lower(a." + column + ")"
}

// facetExists renders facet membership as an EXISTS subquery instead of a
// join, so filters never multiply result rows.
func (builder *sqlBuilder) facetExists(pred Pred, caseSensitive, negate bool) string {
	kw := schema.ArchiveKeyword
	art := schema.ArchiveArtwork

	nameExpr := "k." + kw.Name
	if !caseSensitive {
		nameExpr = "lower(k." + kw.Name + ")"
	}

	placeholders := make([]string, 0, len(pred.Values))
	for _, value := range pred.Values {
		placeholders = append(placeholders, builder.arg(value))
	}

	clause := fmt.Sprintf(
		"EXISTS (SELECT 1 FROM %s k WHERE k.%s = a.%s AND k.%s = %s AND %s IN (%s))",
		kw.Table, kw.ArtworkID, art.InsertID, kw.Type, builder.arg(pred.Field),
		nameExpr, strings.Join(placeholders, ", "),
	)

	if negate {
		return "NOT " + clause
	}
	return clause
}

// colorExists requires one image whose dominant color satisfies every
// requested channel range.
func (builder *sqlBuilder) colorExists(ranges []ColorRange) string {
	img := schema.ArchiveImage
	art := schema.ArchiveArtwork

	conds := make([]string, 0, len(ranges))
	for _, r := range ranges {
		conds = append(conds, fmt.Sprintf(
			"i.%s BETWEEN %s AND %s",
			colorColumn(r.Channel), builder.arg(r.Min), builder.arg(r.Max),
		))
	}

	return fmt.Sprintf(
		"EXISTS (SELECT 1 FROM %s i WHERE i.%s = a.%s AND %s)",
		img.Table, img.ArtworkID, art.InsertID, strings.Join(conds, " AND "),
	)
}

// word renders one search word: the filter clause (the word must match at
// least one field) and its weighted score terms.
func (builder *sqlBuilder) word(word string) (string, []string) {
	var ors, scores []string

	for _, scoreField := range ScoreFields {
		var expr string
		if scoreField.Facet != "" {
			expr = builder.facetJoin(scoreField.Facet) + ".names"
		} else {
			expr = "a." + scoreField.Column
		}

		match := builder.wordMatch(expr, word)
		ors = append(ors, match)
		scores = append(scores, fmt.Sprintf(
			"(CASE WHEN %s THEN %s ELSE 0 END)",
			match, formatWeight(scoreField.Weight),
		))
	}

	return "(" + strings.Join(ors, " OR ") + ")", scores
}

// wordMatch is a begins-word match: the word starts the field, or follows a
// space. The aggregated facet values are joined with " | ", so a value
// boundary always follows a space as well.
func (builder *sqlBuilder) wordMatch(expr, word string) string {
	escaped := EscapeLike(word)
	return fmt.Sprintf(
		"(lower(%s) LIKE %s OR lower(%s) LIKE %s)",
		expr, builder.arg(escaped+"%"),
		expr, builder.arg("% "+escaped+"%"),
	)
}

// EscapeLike neutralizes LIKE metacharacters in user input.
func EscapeLike(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, "%", `\%`)
	value = strings.ReplaceAll(value, "_", `\_`)
	return value
}

func formatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'f', -1, 64)
}

func colorColumn(channel string) string {
	img := schema.ArchiveImage
	switch channel {
	case ChannelHue:
		return img.ColorHue
	case ChannelSaturation:
		return img.ColorSaturation
	case ChannelLightness:
		return img.ColorLightness
	default:
		return img.ColorHue
	}
}
