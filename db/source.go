package db

import (
	"context"

	"github.com/datagrid/datagrid-apis/table"
)

// Page is one page of rows plus the size of the whole result.
type Page struct {
	Rows     []map[string]interface{}
	RowCount int
}

// Source serves pages of table data for a query state. OrderBy in the state is a snake_case field.
type Source interface {
	Tables(ctx context.Context) ([]string, error)
	Fetch(ctx context.Context, tableName string, state table.QueryState) (*Page, error)
	// Search returns at most limit rows whose column contains query, ignoring case.
	Search(ctx context.Context, tableName string, column string, query string, limit int) ([]map[string]interface{}, error)
}
