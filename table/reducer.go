// Package table turns pagination and sorting interactions on a server driven table into query
// descriptors for the caller, and maps what the caller fetched back into view state.
package table

import (
	"fmt"

	"github.com/datagrid/datagrid-apis/config"
	"github.com/datagrid/datagrid-apis/log"
	"github.com/datagrid/datagrid-apis/pagination"
)

// Reducer holds no authoritative copy of the query state: pagination always reflects the last
// options the caller provided. Only the sort indicator and row expansion are kept locally.
type Reducer struct {
	options   Options
	callbacks Callbacks
	pageSizes config.PageSizes
	cycle     config.SortCycle
	naming    config.NamingConvention
	logger    log.Logger
	sorting   SortingState
	expanded  map[int]bool
}

func NewReducer(cfg config.Config, options Options, callbacks Callbacks) *Reducer {
	r := &Reducer{
		options:   options,
		callbacks: callbacks,
		pageSizes: cfg.PageSizes(),
		cycle:     cfg.SortCycle(),
		naming:    cfg.Naming(),
		logger:    cfg.Logger(),
		expanded:  make(map[int]bool),
	}
	r.sorting = r.mapSorting(options.Sorting)
	return r
}

func (r *Reducer) mapSorting(sorting *SortingOptions) SortingState {
	if sorting == nil || sorting.OrderBy == "" {
		return SortingState{}
	}
	return SortingState{{
		ID:   r.naming.ToColumnID(sorting.OrderBy),
		Desc: sorting.SortOrder == Descending,
	}}
}

// SetOptions replaces the caller provided options, typically after a fetch completes. The local
// sort indicator is kept.
func (r *Reducer) SetOptions(options Options) {
	r.options = options
}

func (r *Reducer) Options() Options {
	return r.options
}

// Pagination is the pagination state as last reported by the caller.
func (r *Reducer) Pagination() PaginationState {
	state := PaginationState{
		PageIndex: 0,
		PageSize:  r.options.Pagination.PageSize,
	}
	if r.options.Pagination.Page != nil {
		state.PageIndex = *r.options.Pagination.Page
	}
	if state.PageSize <= 0 {
		state.PageSize = r.pageSizes.Default()
	}
	return state
}

func (r *Reducer) SetPagination(state PaginationState) error {
	return r.UpdatePagination(func(PaginationState) PaginationState {
		return state
	})
}

// UpdatePagination applies updater to the current pagination and reports the result through
// OnPaginationChange. Nothing is retained: the next call still starts from the caller's options.
func (r *Reducer) UpdatePagination(updater PaginationUpdater) error {
	next := updater(r.Pagination())
	if next.PageIndex < 0 {
		return fmt.Errorf("invalid page index: %d", next.PageIndex)
	}
	if !r.pageSizes.Contains(next.PageSize) {
		return fmt.Errorf("page size %d is not one of %v", next.PageSize, []int(r.pageSizes))
	}

	if r.callbacks.OnPaginationChange != nil {
		r.callbacks.OnPaginationChange(PaginationChange{
			Page:     next.PageIndex,
			PageSize: next.PageSize,
		})
	}
	return nil
}

func (r *Reducer) GoToPage(pageIndex int) error {
	return r.UpdatePagination(func(old PaginationState) PaginationState {
		old.PageIndex = pageIndex
		return old
	})
}

func (r *Reducer) NextPage() error {
	if !r.CanNextPage() {
		return nil
	}
	return r.GoToPage(r.Pagination().PageIndex + 1)
}

func (r *Reducer) PreviousPage() error {
	if !r.CanPreviousPage() {
		return nil
	}
	return r.GoToPage(r.Pagination().PageIndex - 1)
}

// SetPageSize changes the page size keeping the first row of the current page visible.
func (r *Reducer) SetPageSize(pageSize int) error {
	return r.UpdatePagination(func(old PaginationState) PaginationState {
		if pageSize <= 0 {
			return PaginationState{PageIndex: old.PageIndex, PageSize: pageSize}
		}
		topRow := old.PageIndex * old.PageSize
		return PaginationState{PageIndex: topRow / pageSize, PageSize: pageSize}
	})
}

func (r *Reducer) PageCount() int {
	if r.options.Pagination.PageCount > 0 {
		return r.options.Pagination.PageCount
	}
	return pagination.PageCount(r.options.Pagination.RowCount, r.Pagination().PageSize)
}

func (r *Reducer) CanPreviousPage() bool {
	return r.Pagination().PageIndex > 0
}

func (r *Reducer) CanNextPage() bool {
	return r.Pagination().PageIndex+1 < r.PageCount()
}

// PaginationView is the compressed list of page controls for the current page.
func (r *Reducer) PaginationView() pagination.View {
	return pagination.NewView(r.Pagination().PageIndex+1, r.PageCount())
}

// pagerThreshold is the row count up to which the pager is hidden.
const pagerThreshold = 5

func (r *Reducer) ShowPager() bool {
	return r.options.Pagination.RowCount > pagerThreshold
}

func (r *Reducer) ShowHeader() bool {
	return !r.options.DisableHeader
}

func (r *Reducer) Sorting() SortingState {
	return append(SortingState(nil), r.sorting...)
}

func (r *Reducer) SetSorting(state SortingState) {
	r.UpdateSorting(func(SortingState) SortingState {
		return state
	})
}

// UpdateSorting applies updater to the local sort state and reports the first column through
// OnSortingChange. Without a callback the click has no visible effect.
func (r *Reducer) UpdateSorting(updater SortingUpdater) {
	next := updater(r.Sorting())
	if r.callbacks.OnSortingChange == nil {
		r.logger.Debug("sorting change ignored, no callback registered")
		return
	}

	change := SortingChange{SortOrder: Ascending}
	if len(next) > 0 {
		change.OrderBy = r.naming.ToWireField(next[0].ID)
		if next[0].Desc {
			change.SortOrder = Descending
		}
	}
	r.callbacks.OnSortingChange(change)
	r.sorting = next
}

// Refresh is the retry affordance shown with an error.
func (r *Reducer) Refresh() {
	if r.callbacks.OnRefresh != nil {
		r.callbacks.OnRefresh()
	}
}
