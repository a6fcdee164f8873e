package table

import (
	"testing"

	"github.com/datagrid/datagrid-apis/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	pagination []PaginationChange
	sorting    []SortingChange
	refreshes  int
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnPaginationChange: func(c PaginationChange) { r.pagination = append(r.pagination, c) },
		OnSortingChange:    func(c SortingChange) { r.sorting = append(r.sorting, c) },
		OnRefresh:          func() { r.refreshes++ },
	}
}

func intPtr(v int) *int {
	return &v
}

func newReducer(options Options, callbacks Callbacks) *Reducer {
	return NewReducer(config.NewConfigMock().Default(), options, callbacks)
}

func TestPaginationChangeDirectAndUpdater(t *testing.T) {
	rec := &recorder{}
	r := newReducer(Options{Pagination: PaginationOptions{PageSize: 10, Page: intPtr(0)}}, rec.callbacks())

	require.NoError(t, r.SetPagination(PaginationState{PageIndex: 2, PageSize: 30}))
	require.NoError(t, r.UpdatePagination(func(old PaginationState) PaginationState {
		assert.Equal(t, PaginationState{PageIndex: 0, PageSize: 10}, old)
		return PaginationState{PageIndex: 2, PageSize: 30}
	}))

	assert.Equal(t, []PaginationChange{{Page: 2, PageSize: 30}, {Page: 2, PageSize: 30}}, rec.pagination)
}

func TestPaginationNotRetained(t *testing.T) {
	rec := &recorder{}
	r := newReducer(Options{Pagination: PaginationOptions{PageSize: 10, Page: intPtr(1), PageCount: 5}}, rec.callbacks())

	require.NoError(t, r.NextPage())
	require.NoError(t, r.NextPage())
	// The caller did not provide new options, so both clicks start from page 1.
	assert.Equal(t, []PaginationChange{{Page: 2, PageSize: 10}, {Page: 2, PageSize: 10}}, rec.pagination)

	r.SetOptions(Options{Pagination: PaginationOptions{PageSize: 10, Page: intPtr(2), PageCount: 5}})
	require.NoError(t, r.NextPage())
	assert.Equal(t, PaginationChange{Page: 3, PageSize: 10}, rec.pagination[2])
}

func TestPaginationDefaults(t *testing.T) {
	rec := &recorder{}
	r := newReducer(Options{}, rec.callbacks())

	assert.Equal(t, PaginationState{PageIndex: 0, PageSize: 5}, r.Pagination())
	require.NoError(t, r.GoToPage(3))
	assert.Equal(t, PaginationChange{Page: 3, PageSize: 5}, rec.pagination[0])
}

func TestPaginationRejectsInvalidState(t *testing.T) {
	rec := &recorder{}
	r := newReducer(Options{Pagination: PaginationOptions{PageSize: 10}}, rec.callbacks())

	assert.Error(t, r.SetPagination(PaginationState{PageIndex: 0, PageSize: 7}))
	assert.Error(t, r.GoToPage(-1))
	assert.Empty(t, rec.pagination)
}

func TestPaginationWithoutCallback(t *testing.T) {
	r := newReducer(Options{}, Callbacks{})
	assert.NoError(t, r.GoToPage(1))
}

func TestPreviousAndNextBounds(t *testing.T) {
	rec := &recorder{}
	r := newReducer(Options{Pagination: PaginationOptions{PageSize: 10, Page: intPtr(0), PageCount: 2}}, rec.callbacks())

	assert.False(t, r.CanPreviousPage())
	require.NoError(t, r.PreviousPage())
	assert.Empty(t, rec.pagination)

	r.SetOptions(Options{Pagination: PaginationOptions{PageSize: 10, Page: intPtr(1), PageCount: 2}})
	assert.False(t, r.CanNextPage())
	require.NoError(t, r.NextPage())
	assert.Empty(t, rec.pagination)

	require.NoError(t, r.PreviousPage())
	assert.Equal(t, []PaginationChange{{Page: 0, PageSize: 10}}, rec.pagination)
}

func TestSetPageSizeKeepsTopRow(t *testing.T) {
	rec := &recorder{}
	r := newReducer(Options{Pagination: PaginationOptions{PageSize: 10, Page: intPtr(4)}}, rec.callbacks())

	require.NoError(t, r.SetPageSize(30))
	assert.Equal(t, PaginationChange{Page: 1, PageSize: 30}, rec.pagination[0])

	assert.Error(t, r.SetPageSize(0))
}

func TestPageCountFallsBackToRowCount(t *testing.T) {
	r := newReducer(Options{Pagination: PaginationOptions{PageSize: 10, RowCount: 95}}, Callbacks{})
	assert.Equal(t, 10, r.PageCount())

	r.SetOptions(Options{Pagination: PaginationOptions{PageSize: 10, RowCount: 95, PageCount: 3}})
	assert.Equal(t, 3, r.PageCount())
}

func TestPaginationView(t *testing.T) {
	r := newReducer(Options{Pagination: PaginationOptions{PageSize: 10, Page: intPtr(4), PageCount: 10}}, Callbacks{})

	view := r.PaginationView()
	assert.Equal(t, 5, view.CurrentPage)
	assert.Equal(t, "[1 … 4 5 6 … 10]", fmtItems(view.Items))
}

func TestShowPager(t *testing.T) {
	r := newReducer(Options{Pagination: PaginationOptions{RowCount: 5}}, Callbacks{})
	assert.False(t, r.ShowPager())

	r.SetOptions(Options{Pagination: PaginationOptions{RowCount: 6}})
	assert.True(t, r.ShowPager())
}

func TestShowHeader(t *testing.T) {
	r := newReducer(Options{}, Callbacks{})
	assert.True(t, r.ShowHeader())

	r.SetOptions(Options{DisableHeader: true})
	assert.False(t, r.ShowHeader())
}

func TestRefresh(t *testing.T) {
	rec := &recorder{}
	r := newReducer(Options{Error: "boom"}, rec.callbacks())
	r.Refresh()
	assert.Equal(t, 1, rec.refreshes)

	newReducer(Options{}, Callbacks{}).Refresh()
}

func TestOptionsFor(t *testing.T) {
	opts := OptionsFor(QueryState{Page: 2, PageSize: 10, OrderBy: "created_at", SortOrder: Descending}, 42, 5)
	assert.Equal(t, 2, *opts.Pagination.Page)
	assert.Equal(t, 10, opts.Pagination.PageSize)
	assert.Equal(t, 42, opts.Pagination.RowCount)
	assert.Equal(t, 5, opts.Pagination.PageCount)
	assert.Equal(t, &SortingOptions{OrderBy: "created_at", SortOrder: Descending}, opts.Sorting)

	opts = OptionsFor(QueryState{PageSize: 10}, 0, 0)
	assert.Nil(t, opts.Sorting)
}

func TestQueryState(t *testing.T) {
	state := NewQueryState(config.DefaultPageSizes, "", "")
	assert.Equal(t, QueryState{Page: 0, PageSize: 5, SortOrder: Ascending}, state)

	state = state.WithPagination(PaginationChange{Page: 3, PageSize: 10}).
		WithSorting(SortingChange{OrderBy: "name", SortOrder: Descending})
	assert.Equal(t, QueryState{Page: 3, PageSize: 10, OrderBy: "name", SortOrder: Descending}, state)
	assert.Equal(t, 30, state.Offset())
}

func TestParseSortOrder(t *testing.T) {
	order, err := ParseSortOrder("DESC")
	assert.NoError(t, err)
	assert.Equal(t, Descending, order)

	order, err = ParseSortOrder("")
	assert.NoError(t, err)
	assert.Equal(t, Ascending, order)

	_, err = ParseSortOrder("up")
	assert.Error(t, err)
}
