package config

import (
	"time"

	"github.com/datagrid/datagrid-apis/log"
)

// DefaultPageSizes is the enumerated set of page sizes offered by the pager.
var DefaultPageSizes = PageSizes{5, 10, 30, 50}

const DefaultSearchDebounce = 500 * time.Millisecond

// DefaultTablesUpdateInterval is how often the exposed table list is checked for changes.
const DefaultTablesUpdateInterval = 10 * time.Second

type Config interface {
	PageSizes() PageSizes
	SortCycle() SortCycle
	Naming() NamingConvention
	SearchDebounce() time.Duration
	TablesUpdateInterval() time.Duration
	Logger() log.Logger
}
