// Package pagination computes the compressed list of page controls shown under a table.
package pagination

import (
	"encoding/json"
	"strconv"
)

// Ellipsis is rendered in place of an elided run of page numbers.
const Ellipsis = "…"

// fullRangeLimit is the largest page count displayed without elision.
const fullRangeLimit = 5

// Item is one entry of a page range: either a 1-based page number or an ellipsis marker.
type Item struct {
	page int
}

func PageItem(page int) Item {
	return Item{page: page}
}

func EllipsisItem() Item {
	return Item{}
}

func (i Item) IsEllipsis() bool {
	return i.page == 0
}

// Page returns the page number, or 0 for an ellipsis.
func (i Item) Page() int {
	return i.page
}

func (i Item) String() string {
	if i.IsEllipsis() {
		return Ellipsis
	}
	return strconv.Itoa(i.page)
}

func (i Item) MarshalJSON() ([]byte, error) {
	if i.IsEllipsis() {
		return json.Marshal(Ellipsis)
	}
	return json.Marshal(i.page)
}

func (i *Item) UnmarshalJSON(data []byte) error {
	var page int
	if err := json.Unmarshal(data, &page); err == nil {
		i.page = page
		return nil
	}
	var marker string
	if err := json.Unmarshal(data, &marker); err != nil {
		return err
	}
	i.page = 0
	return nil
}

// Range returns the page controls for currentPage (1-based) out of pageCount pages. The first and the
// last page are always present and at most one ellipsis separates them from the window around the
// current page. currentPage is clamped into [1, pageCount].
func Range(currentPage, pageCount int) []Item {
	if pageCount <= 0 {
		return []Item{}
	}
	currentPage = clamp(currentPage, 1, pageCount)

	if pageCount <= fullRangeLimit {
		items := make([]Item, 0, pageCount)
		for page := 1; page <= pageCount; page++ {
			items = append(items, PageItem(page))
		}
		return items
	}

	items := make([]Item, 0, fullRangeLimit+2)
	items = append(items, PageItem(1))

	startPage := max(2, currentPage-1)
	endPage := min(pageCount-1, currentPage+1)

	// Keep the window the same width near either end.
	if currentPage < 4 {
		endPage = 5
	} else if currentPage > pageCount-3 {
		startPage = pageCount - 4
	}

	if startPage > 2 {
		items = append(items, EllipsisItem())
	}
	for page := startPage; page <= endPage; page++ {
		items = append(items, PageItem(page))
	}
	if endPage < pageCount-1 {
		items = append(items, EllipsisItem())
	}

	return append(items, PageItem(pageCount))
}

// PageCount is the number of pages needed to show rowCount rows, pageSize at a time.
func PageCount(rowCount, pageSize int) int {
	if rowCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (rowCount + pageSize - 1) / pageSize
}

func clamp(value, lower, upper int) int {
	return max(lower, min(upper, value))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
