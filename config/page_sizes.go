package config

import (
	"fmt"
	"strconv"
)

type PageSizes []int

// Default is the first allowed size, used when the caller does not provide one.
func (p PageSizes) Default() int {
	if len(p) == 0 {
		return DefaultPageSizes[0]
	}
	return p[0]
}

func (p PageSizes) Contains(size int) bool {
	for _, s := range p {
		if s == size {
			return true
		}
	}
	return false
}

func ParsePageSizes(values ...string) (PageSizes, error) {
	sizes := make(PageSizes, 0, len(values))
	for _, value := range values {
		size, err := strconv.Atoi(value)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("invalid page size: %s", value)
		}
		if sizes.Contains(size) {
			return nil, fmt.Errorf("duplicate page size: %d", size)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("at least one page size is required")
	}
	return sizes, nil
}
