package db

import (
	"fmt"
	"regexp"
	"strings"
)

var unquotedIdentifier = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// quoteIdentifier leaves lower case identifiers as they are and double quotes everything else.
func quoteIdentifier(name string) string {
	if unquotedIdentifier.MatchString(name) {
		return name
	}
	return `"` + strings.Replace(name, `"`, `""`, -1) + `"`
}

func tableName(keyspace, table string) string {
	return fmt.Sprintf("%s.%s", quoteIdentifier(keyspace), quoteIdentifier(table))
}

func selectQuery(keyspace, table string, limited bool) string {
	query := fmt.Sprintf("SELECT * FROM %s", tableName(keyspace, table))
	if limited {
		query += " LIMIT ?"
	}
	return query
}

func countQuery(keyspace, table string) string {
	return fmt.Sprintf("SELECT COUNT(*) AS count FROM %s", tableName(keyspace, table))
}
