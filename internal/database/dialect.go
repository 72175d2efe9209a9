package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the differences between the supported engines. Queries in
// this package are written with '?' placeholders and rebound per dialect.
type Dialect struct {
	// Name is the configuration name ("sqlite" or "postgres")
	Name string
	// DriverName is the database/sql driver registered for the engine
	DriverName string
	// numbered placeholders ($1, $2, ...) instead of '?'
	numbered bool
}

var (
	SQLite   = Dialect{Name: "sqlite", DriverName: "sqlite"}
	Postgres = Dialect{Name: "postgres", DriverName: "pgx", numbered: true}
)

// DialectFor maps a configured driver name to its dialect
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database driver %q (must be: sqlite, postgres)", driver)
}

// Like returns the substring match operator. SQLite's LIKE already ignores
// ASCII case; Postgres needs ILIKE for the same matches.
func (d Dialect) Like() string {
	if d.Name == Postgres.Name {
		return "ILIKE"
	}
	return "LIKE"
}

// Rebind rewrites '?' placeholders into the dialect's form. Question marks
// inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if !d.numbered || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inLiteral := false
	for _, r := range query {
		switch {
		case r == '\'':
			inLiteral = !inLiteral
			b.WriteRune(r)
		case r == '?' && !inLiteral:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
