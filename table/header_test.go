package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/datagrid/datagrid-apis/config"
	"github.com/datagrid/datagrid-apis/pagination"
	"github.com/stretchr/testify/assert"
)

func fmtItems(items []pagination.Item) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.String())
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}

func newReducerWithCycle(cycle config.SortCycle, options Options, callbacks Callbacks) *Reducer {
	cfg := config.NewConfigMock()
	cfg.On("SortCycle").Return(cycle)
	cfg.Default()
	return NewReducer(cfg, options, callbacks)
}

func TestToggleSortTriState(t *testing.T) {
	rec := &recorder{}
	r := newReducerWithCycle(config.SortCycleAscDescNone, Options{}, rec.callbacks())

	r.ToggleSort("createdAt")
	assert.Equal(t, IndicatorAsc, r.SortIndicator("createdAt"))
	r.ToggleSort("createdAt")
	assert.Equal(t, IndicatorDesc, r.SortIndicator("createdAt"))
	r.ToggleSort("createdAt")
	assert.Equal(t, IndicatorNone, r.SortIndicator("createdAt"))

	assert.Equal(t, []SortingChange{
		{OrderBy: "created_at", SortOrder: Ascending},
		{OrderBy: "created_at", SortOrder: Descending},
		{OrderBy: "", SortOrder: Ascending},
	}, rec.sorting)
}

func TestToggleSortTwoState(t *testing.T) {
	rec := &recorder{}
	r := newReducerWithCycle(config.SortCycleAscDesc, Options{}, rec.callbacks())

	r.ToggleSort("name")
	r.ToggleSort("name")
	r.ToggleSort("name")

	assert.Equal(t, []SortingChange{
		{OrderBy: "name", SortOrder: Ascending},
		{OrderBy: "name", SortOrder: Descending},
		{OrderBy: "name", SortOrder: Ascending},
	}, rec.sorting)
}

func TestToggleSortOtherColumnStartsAscending(t *testing.T) {
	rec := &recorder{}
	r := newReducer(Options{}, rec.callbacks())

	r.ToggleSort("name")
	r.ToggleSort("name")
	r.ToggleSort("totalAmount")

	assert.Equal(t, IndicatorNone, r.SortIndicator("name"))
	assert.Equal(t, IndicatorAsc, r.SortIndicator("totalAmount"))
	assert.Equal(t, SortingChange{OrderBy: "total_amount", SortOrder: Ascending}, rec.sorting[2])
}

func TestToggleSortWithoutCallbackHasNoEffect(t *testing.T) {
	r := newReducer(Options{}, Callbacks{})

	r.ToggleSort("name")
	assert.Equal(t, IndicatorNone, r.SortIndicator("name"))
	assert.Empty(t, r.Sorting())
}

func TestInitialSortingFromOptions(t *testing.T) {
	rec := &recorder{}
	r := newReducer(Options{Sorting: &SortingOptions{OrderBy: "order_by_date", SortOrder: Descending}}, rec.callbacks())

	assert.Equal(t, IndicatorDesc, r.SortIndicator("orderByDate"))
	assert.Equal(t, SortingState{{ID: "orderByDate", Desc: true}}, r.Sorting())

	r.ToggleSort("orderByDate")
	assert.Equal(t, SortingChange{OrderBy: "", SortOrder: Ascending}, rec.sorting[0])
	assert.Equal(t, IndicatorNone, r.SortIndicator("orderByDate"))
}

func TestUpdateSortingWithUpdater(t *testing.T) {
	rec := &recorder{}
	r := newReducer(Options{Sorting: &SortingOptions{OrderBy: "name", SortOrder: Ascending}}, rec.callbacks())

	r.UpdateSorting(func(old SortingState) SortingState {
		assert.Equal(t, SortingState{{ID: "name"}}, old)
		return SortingState{{ID: old[0].ID, Desc: true}}
	})
	r.SetSorting(SortingState{{ID: "createdAt"}})

	assert.Equal(t, []SortingChange{
		{OrderBy: "name", SortOrder: Descending},
		{OrderBy: "created_at", SortOrder: Ascending},
	}, rec.sorting)
}

func TestSortingReturnsCopy(t *testing.T) {
	r := newReducer(Options{Sorting: &SortingOptions{OrderBy: "name"}}, Callbacks{})
	sorting := r.Sorting()
	sorting[0].Desc = true
	assert.Equal(t, IndicatorAsc, r.SortIndicator("name"))
}
