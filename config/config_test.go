package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortCycle(t *testing.T) {
	cycle, err := ParseSortCycle("asc-desc")
	assert.NoError(t, err)
	assert.Equal(t, SortCycleAscDesc, cycle)
	assert.Equal(t, "asc-desc", cycle.String())

	cycle, err = ParseSortCycle("asc-desc-none")
	assert.NoError(t, err)
	assert.Equal(t, SortCycleAscDescNone, cycle)

	cycle, err = ParseSortCycle("")
	assert.NoError(t, err)
	assert.Equal(t, SortCycleAscDescNone, cycle)

	_, err = ParseSortCycle("random")
	assert.EqualError(t, err, "invalid sort cycle: random")
}

func TestParsePageSizes(t *testing.T) {
	sizes, err := ParsePageSizes("10", "25", "100")
	assert.NoError(t, err)
	assert.Equal(t, PageSizes{10, 25, 100}, sizes)
	assert.Equal(t, 10, sizes.Default())
	assert.True(t, sizes.Contains(25))
	assert.False(t, sizes.Contains(5))

	_, err = ParsePageSizes("10", "abc")
	assert.EqualError(t, err, "invalid page size: abc")

	_, err = ParsePageSizes("0")
	assert.Error(t, err)

	_, err = ParsePageSizes("10", "10")
	assert.EqualError(t, err, "duplicate page size: 10")

	_, err = ParsePageSizes()
	assert.Error(t, err)
}

func TestPageSizesDefault(t *testing.T) {
	assert.Equal(t, 5, DefaultPageSizes.Default())
	assert.Equal(t, 5, PageSizes(nil).Default())
}

func TestConfigMockDefault(t *testing.T) {
	cfg := NewConfigMock().Default()
	assert.Equal(t, DefaultPageSizes, cfg.PageSizes())
	assert.Equal(t, SortCycleAscDescNone, cfg.SortCycle())
	assert.Equal(t, DefaultSearchDebounce, cfg.SearchDebounce())
	assert.NotNil(t, cfg.Naming())
	assert.NotNil(t, cfg.Logger())
}
