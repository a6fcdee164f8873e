package table

import (
	"fmt"
	"strings"

	"github.com/datagrid/datagrid-apis/config"
)

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

func ParseSortOrder(value string) (SortOrder, error) {
	switch strings.ToLower(value) {
	case "", "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return "", fmt.Errorf("sort order must be either 'asc' or 'desc', got '%s'", value)
	}
}

// QueryState is the caller owned descriptor used to (re)fetch a page of server side data. Page is
// 0-based and OrderBy is always in snake_case.
type QueryState struct {
	Page      int       `json:"page" mapstructure:"page"`
	PageSize  int       `json:"pageSize" mapstructure:"pageSize"`
	OrderBy   string    `json:"orderBy" mapstructure:"orderBy"`
	SortOrder SortOrder `json:"sortOrder" mapstructure:"sortOrder"`
}

// NewQueryState creates the state a table starts with when it is first shown.
func NewQueryState(pageSizes config.PageSizes, orderBy string, sortOrder SortOrder) QueryState {
	if sortOrder == "" {
		sortOrder = Ascending
	}
	return QueryState{
		Page:      0,
		PageSize:  pageSizes.Default(),
		OrderBy:   orderBy,
		SortOrder: sortOrder,
	}
}

func (s QueryState) WithPagination(change PaginationChange) QueryState {
	s.Page = change.Page
	s.PageSize = change.PageSize
	return s
}

func (s QueryState) WithSorting(change SortingChange) QueryState {
	s.OrderBy = change.OrderBy
	s.SortOrder = change.SortOrder
	return s
}

// Offset is the index of the first row of the page.
func (s QueryState) Offset() int {
	return s.Page * s.PageSize
}

// Options is what the caller knows about the data it last fetched.
type Options struct {
	Pagination      PaginationOptions
	Sorting         *SortingOptions
	Loading         bool
	Error           string
	NoResults       string
	DisableHeader   bool
	Empty           interface{}
	DefaultExpanded bool
}

type PaginationOptions struct {
	PageSize int `json:"pageSize"`
	// Page is nil until the caller has fetched at least once.
	Page      *int `json:"page,omitempty"`
	PageCount int  `json:"pageCount"`
	RowCount  int  `json:"rowCount"`
}

type SortingOptions struct {
	OrderBy   string    `json:"orderBy"`
	SortOrder SortOrder `json:"sortOrder"`
}

// OptionsFor builds the options describing a fetched page for state.
func OptionsFor(state QueryState, rowCount, pageCount int) Options {
	page := state.Page
	var sorting *SortingOptions
	if state.OrderBy != "" {
		sorting = &SortingOptions{OrderBy: state.OrderBy, SortOrder: state.SortOrder}
	}
	return Options{
		Pagination: PaginationOptions{
			PageSize:  state.PageSize,
			Page:      &page,
			PageCount: pageCount,
			RowCount:  rowCount,
		},
		Sorting: sorting,
	}
}

type PaginationState struct {
	PageIndex int
	PageSize  int
}

type PaginationUpdater func(old PaginationState) PaginationState

type ColumnSort struct {
	ID   string
	Desc bool
}

// SortingState only ever holds a single column, multi-column sorting is not supported.
type SortingState []ColumnSort

type SortingUpdater func(old SortingState) SortingState

type PaginationChange struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

type SortingChange struct {
	OrderBy   string    `json:"orderBy"`
	SortOrder SortOrder `json:"sortOrder"`
}

type Callbacks struct {
	OnPaginationChange func(PaginationChange)
	OnSortingChange    func(SortingChange)
	OnRefresh          func()
	RenderRowDetails   func(row interface{}) interface{}
}
