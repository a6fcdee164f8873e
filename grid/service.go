// Package grid serves table views over a data source. It is shared by the REST and GraphQL
// endpoints.
package grid

import (
	"context"
	"fmt"

	"github.com/datagrid/datagrid-apis/config"
	"github.com/datagrid/datagrid-apis/db"
	"github.com/datagrid/datagrid-apis/log"
	"github.com/datagrid/datagrid-apis/pagination"
	e "github.com/datagrid/datagrid-apis/rest/errors"
	"github.com/datagrid/datagrid-apis/search"
	"github.com/datagrid/datagrid-apis/table"
	"github.com/datagrid/datagrid-apis/types"
)

type ActionType string

const (
	ActionPage     ActionType = "page"
	ActionPageSize ActionType = "pageSize"
	ActionSort     ActionType = "sort"
	ActionRefresh  ActionType = "refresh"
)

// Action is a user interaction on a rendered table.
type Action struct {
	Type     ActionType `json:"type" mapstructure:"type"`
	Page     int        `json:"page" mapstructure:"page"`
	PageSize int        `json:"pageSize" mapstructure:"pageSize"`
	// Column is the camelCase column id for sort actions.
	Column string `json:"column" mapstructure:"column"`
}

type Service struct {
	source db.Source
	cfg    config.Config
	logger log.Logger
}

func NewService(source db.Source, cfg config.Config) *Service {
	return &Service{
		source: source,
		cfg:    cfg,
		logger: cfg.Logger(),
	}
}

func (s *Service) Tables(ctx context.Context) ([]string, error) {
	return s.source.Tables(ctx)
}

// InitialState is the query state of a table shown for the first time.
func (s *Service) InitialState() table.QueryState {
	return table.NewQueryState(s.cfg.PageSizes(), "", table.Ascending)
}

func (s *Service) validate(state table.QueryState) error {
	if state.Page < 0 {
		return e.NewBadRequestError(fmt.Sprintf("invalid page: %d", state.Page))
	}
	if !s.cfg.PageSizes().Contains(state.PageSize) {
		return e.NewBadRequestError(
			fmt.Sprintf("page size %d is not one of %v", state.PageSize, []int(s.cfg.PageSizes())))
	}
	if state.SortOrder != table.Ascending && state.SortOrder != table.Descending {
		return e.NewBadRequestError(fmt.Sprintf("invalid sort order: '%s'", state.SortOrder))
	}
	return nil
}

// Rows fetches the page described by state and the view state around it.
func (s *Service) Rows(ctx context.Context, tableName string, state table.QueryState) (*types.RowsResult, error) {
	if err := s.validate(state); err != nil {
		return nil, err
	}

	page, err := s.source.Fetch(ctx, tableName, state)
	if err != nil {
		return nil, err
	}

	pageCount := pagination.PageCount(page.RowCount, state.PageSize)
	reducer := table.NewReducer(s.cfg, table.OptionsFor(state, page.RowCount, pageCount), table.Callbacks{})
	view := reducer.PaginationView()

	result := &types.RowsResult{
		State: state,
		Rows:  types.ToJSONValues(page.Rows),
		Pagination: types.PaginationResult{
			Page:        state.Page,
			PageSize:    state.PageSize,
			PageCount:   pageCount,
			RowCount:    page.RowCount,
			CurrentPage: view.CurrentPage,
			Items:       view.Items,
			PageSizes:   []int(s.cfg.PageSizes()),
			CanPrevious: reducer.CanPreviousPage(),
			CanNext:     reducer.CanNextPage(),
			ShowPager:   reducer.ShowPager(),
		},
		Body: reducer.Body(len(page.Rows)),
	}

	if sorting := reducer.Sorting(); len(sorting) > 0 {
		result.Sorting = &types.SortingResult{
			OrderBy:   state.OrderBy,
			SortOrder: state.SortOrder,
			ColumnID:  sorting[0].ID,
			Indicator: reducer.SortIndicator(sorting[0].ID),
		}
	}

	return result, nil
}

// Apply runs action against state and returns the page for the resulting state.
func (s *Service) Apply(
	ctx context.Context,
	tableName string,
	state table.QueryState,
	action Action,
) (*types.RowsResult, error) {
	next := state
	refreshed := false
	reducer := table.NewReducer(s.cfg, table.OptionsFor(state, 0, 0), table.Callbacks{
		OnPaginationChange: func(change table.PaginationChange) {
			next = next.WithPagination(change)
		},
		OnSortingChange: func(change table.SortingChange) {
			next = next.WithSorting(change)
		},
		OnRefresh: func() {
			refreshed = true
		},
	})

	var err error
	switch action.Type {
	case ActionPage:
		err = reducer.GoToPage(action.Page)
	case ActionPageSize:
		err = reducer.SetPageSize(action.PageSize)
	case ActionSort:
		if action.Column == "" {
			err = fmt.Errorf("column is required to sort")
			break
		}
		reducer.ToggleSort(action.Column)
	case ActionRefresh:
		reducer.Refresh()
	default:
		err = fmt.Errorf("unsupported action '%s'", action.Type)
	}
	if err != nil {
		return nil, e.NewBadRequestError(err.Error())
	}

	s.logger.Debug("table action applied",
		"table", tableName,
		"action", string(action.Type),
		"refreshed", refreshed,
		"page", next.Page,
		"pageSize", next.PageSize,
		"orderBy", next.OrderBy,
		"sortOrder", string(next.SortOrder))

	return s.Rows(ctx, tableName, next)
}

// Search returns the options whose column contains query. The option value is the row "id" when the
// table has one.
func (s *Service) Search(
	ctx context.Context,
	tableName string,
	column string,
	query string,
	limit int,
) ([]search.Option, error) {
	field := s.cfg.Naming().ToWireField(column)
	rows, err := s.source.Search(ctx, tableName, field, query, limit)
	if err != nil {
		return nil, err
	}

	options := make([]search.Option, 0, len(rows))
	for _, row := range rows {
		label := types.ToText(row[field])
		value := label
		if id, ok := row["id"]; ok && id != nil {
			value = types.ToText(id)
		}
		options = append(options, search.Option{Value: value, Label: label})
	}
	return options, nil
}

// Searcher returns a debounced searcher over column, for in-process callers driving a search box.
func (s *Service) Searcher(tableName, column string, limit int) *search.Searcher {
	return search.NewSearcher(func(ctx context.Context, query string) ([]search.Option, error) {
		return s.Search(ctx, tableName, column, query, limit)
	}, s.cfg.SearchDebounce(), s.logger)
}
