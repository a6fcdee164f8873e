// types package contains the public API types
// that are shared between both REST and GraphQL
package types

import (
	"net/http"

	"github.com/datagrid/datagrid-apis/pagination"
	"github.com/datagrid/datagrid-apis/table"
)

// RowsResult is a fetched page together with everything needed to draw the table around it.
type RowsResult struct {
	State      table.QueryState         `json:"state"`
	Rows       []map[string]interface{} `json:"rows"`
	Pagination PaginationResult         `json:"pagination"`
	Sorting    *SortingResult           `json:"sorting,omitempty"`
	Body       table.BodyState          `json:"body"`
}

type PaginationResult struct {
	// Page is 0-based, CurrentPage is the 1-based page highlighted by the pager.
	Page        int               `json:"page"`
	PageSize    int               `json:"pageSize"`
	PageCount   int               `json:"pageCount"`
	RowCount    int               `json:"rowCount"`
	CurrentPage int               `json:"currentPage"`
	Items       []pagination.Item `json:"items"`
	PageSizes   []int             `json:"pageSizes"`
	CanPrevious bool              `json:"canPrevious"`
	CanNext     bool              `json:"canNext"`
	ShowPager   bool              `json:"showPager"`
}

type SortingResult struct {
	OrderBy   string          `json:"orderBy"`
	SortOrder table.SortOrder `json:"sortOrder"`
	ColumnID  string          `json:"columnId"`
	Indicator table.Indicator `json:"indicator"`
}

// Route represents a request route to be served
type Route struct {
	Method  string
	Pattern string
	Handler http.Handler
}
