package config

import "fmt"

// SortCycle controls what a click on a sortable column header does.
type SortCycle int

const (
	// SortCycleAscDescNone cycles unsorted -> ascending -> descending -> unsorted.
	SortCycleAscDescNone SortCycle = iota
	// SortCycleAscDesc alternates between ascending and descending, starting at ascending.
	SortCycleAscDesc
)

func ParseSortCycle(value string) (SortCycle, error) {
	switch value {
	case "asc-desc-none", "":
		return SortCycleAscDescNone, nil
	case "asc-desc":
		return SortCycleAscDesc, nil
	default:
		return 0, fmt.Errorf("invalid sort cycle: %s", value)
	}
}

func (c SortCycle) String() string {
	switch c {
	case SortCycleAscDesc:
		return "asc-desc"
	default:
		return "asc-desc-none"
	}
}
