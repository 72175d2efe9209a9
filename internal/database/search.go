package database

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// SkipRule decides when a filter value means "no filter". The searches do not
// share one convention: the researcher search only skips on "-", the others
// also skip on the empty string.
type SkipRule int

const (
	// SkipOnDash skips only the "-" sentinel. An empty substring pattern then
	// matches everything while an empty exact value matches nothing.
	SkipOnDash SkipRule = iota
	// SkipOnEmptyOrDash skips both "" and "-"
	SkipOnEmptyOrDash
)

// Skips reports whether value disables the filter under the rule
func (r SkipRule) Skips(value string) bool {
	if value == models.NoFilter {
		return true
	}
	return r == SkipOnEmptyOrDash && value == ""
}

// SearchResult holds the matched rows and how long the query took
type SearchResult[T models.Record] struct {
	Rows    []T
	Elapsed time.Duration
}

// Milliseconds returns the elapsed time in fractional milliseconds
func (r SearchResult[T]) Milliseconds() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Records returns the rows as display records
func (r SearchResult[T]) Records() []models.Record {
	return models.ToRecords(r.Rows)
}

// filters accumulates optional WHERE conditions. All conditions are ANDed.
type filters struct {
	rule  SkipRule
	like  string
	conds []string
	args  []any
}

// contains adds a substring match unless the value is a "no filter" sentinel
func (f *filters) contains(column, pattern string) {
	if f.rule.Skips(pattern) {
		return
	}
	f.conds = append(f.conds, column+" "+f.like+" ?")
	f.args = append(f.args, "%"+pattern+"%")
}

// equals adds an exact match unless the value is a "no filter" sentinel
func (f *filters) equals(column, value string) {
	if f.rule.Skips(value) {
		return
	}
	f.conds = append(f.conds, column+" = ?")
	f.args = append(f.args, value)
}

func (f *filters) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// timedQuery runs query and measures the time until every row is scanned
func timedQuery[T models.Record](ctx context.Context, s *store, op, query string, scan func(*sql.Rows) (T, error), args []any) (SearchResult[T], error) {
	start := time.Now()
	rows, err := queryRows(ctx, s.db, s.dialect, query, scan, args...)
	elapsed := time.Since(start)
	if err != nil {
		return SearchResult[T]{Elapsed: elapsed}, s.fail(op, err)
	}
	return SearchResult[T]{Rows: rows, Elapsed: elapsed}, nil
}

// SearchResearchers returns researchers whose laboratory name contains
// labPattern and whose level equals level, ordered by id. Only "-" disables a
// filter here.
func (r *Repository) SearchResearchers(ctx context.Context, labPattern, level string) (SearchResult[models.Researcher], error) {
	f := filters{rule: SkipOnDash, like: r.s.dialect.Like()}
	f.contains("l.lab_name", labPattern)
	f.equals("r.level", level)

	return timedQuery(ctx, r.s, "search researchers",
		selectResearchers+f.where()+` ORDER BY r.id`, scanResearcher, f.args)
}

// SearchObjects returns objects whose laboratory name contains labPattern and
// whose type contains typePattern, ordered by id. "" or "-" disables a filter.
func (r *Repository) SearchObjects(ctx context.Context, labPattern, typePattern string) (SearchResult[models.Object], error) {
	f := filters{rule: SkipOnEmptyOrDash, like: r.s.dialect.Like()}
	f.contains("l.lab_name", labPattern)
	f.contains("t.type", typePattern)

	return timedQuery(ctx, r.s, "search objects",
		selectObjects+f.where()+` ORDER BY o.id`, scanObject, f.args)
}

// SearchLabs returns the distinct laboratories that have a researcher
// matching the name and level filters and an object matching the object name
// filter. The conditions are evaluated on the rows of one left join of
// laboratory, researcher and object, so the researcher name and level must
// hold for the same researcher, and a lab without researchers (or objects)
// never matches an active researcher (or object) filter. "" or "-" disables a
// filter.
func (r *Repository) SearchLabs(ctx context.Context, researcherPattern, level, objectPattern string) (SearchResult[models.Laboratory], error) {
	f := filters{rule: SkipOnEmptyOrDash, like: r.s.dialect.Like()}
	f.contains("r.full_name", researcherPattern)
	f.equals("r.level", level)
	f.contains("o.name", objectPattern)

	query := `
	SELECT DISTINCT l.id, l.lab_name
	FROM laboratory AS l
	LEFT JOIN researcher AS r ON r.laboratory_id = l.id
	LEFT JOIN object AS o ON o.laboratory_id = l.id` + f.where() + `
	ORDER BY l.id`

	return timedQuery(ctx, r.s, "search labs", query, scanLaboratory, f.args)
}
