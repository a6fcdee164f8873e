package table

import "github.com/datagrid/datagrid-apis/config"

// Indicator is the chevron shown next to a sortable column title.
type Indicator string

const (
	IndicatorNone Indicator = "none"
	IndicatorAsc  Indicator = "asc"
	IndicatorDesc Indicator = "desc"
)

func (r *Reducer) SortIndicator(columnID string) Indicator {
	for _, sort := range r.sorting {
		if sort.ID != columnID {
			continue
		}
		if sort.Desc {
			return IndicatorDesc
		}
		return IndicatorAsc
	}
	return IndicatorNone
}

// ToggleSort handles a click on the header of columnID according to the configured cycle. A click
// on a column other than the sorted one starts over at ascending.
func (r *Reducer) ToggleSort(columnID string) {
	next := nextIndicator(r.cycle, r.SortIndicator(columnID))
	r.UpdateSorting(func(SortingState) SortingState {
		switch next {
		case IndicatorAsc:
			return SortingState{{ID: columnID, Desc: false}}
		case IndicatorDesc:
			return SortingState{{ID: columnID, Desc: true}}
		default:
			return SortingState{}
		}
	})
}

func nextIndicator(cycle config.SortCycle, current Indicator) Indicator {
	switch current {
	case IndicatorAsc:
		return IndicatorDesc
	case IndicatorDesc:
		if cycle == config.SortCycleAscDesc {
			return IndicatorAsc
		}
		return IndicatorNone
	default:
		return IndicatorAsc
	}
}
