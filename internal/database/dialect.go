package database

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/billform/internal/config"
)

// dialect captures the few differences between the supported SQL engines
type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case config.DriverSQLite, "":
		return dialectSQLite, nil
	case config.DriverPostgres:
		return dialectPostgres, nil
	default:
		return 0, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// driverName is the database/sql driver registered for the dialect
func (d dialect) driverName() string {
	if d == dialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

// rebind rewrites ? placeholders into the dialect's bind syntax.
// Queries in this package never contain a literal question mark.
func (d dialect) rebind(query string) string {
	if d != dialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
