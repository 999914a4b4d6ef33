package repository

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The repository's column list and the shipped DDL drift independently;
// this pins them together so a schema rename cannot silently strand the
// queries on an undefined column.
func TestPublishersSchemaHasQueriedColumns(t *testing.T) {
	ddl, err := os.ReadFile("../../../../migrations/001_init.sql")
	require.NoError(t, err)

	block := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS publishers \((.*?)\);`).
		FindSubmatch(ddl)
	require.NotNil(t, block, "publishers DDL missing from migration")

	columns := []string{"id", "name", "description", "website", "created_at", "updated_at"}
	for _, col := range columns {
		pattern := regexp.MustCompile(`(?m)^\s*` + col + `\s`)
		assert.True(t, pattern.Match(block[1]), "publishers DDL does not define column %q", col)
	}
}
