package pagination

// View is the derived pager state recomputed for every response.
type View struct {
	CurrentPage int    `json:"currentPage"`
	PageCount   int    `json:"pageCount"`
	Items       []Item `json:"items"`
}

// NewView builds the pager for a 1-based currentPage. An out of range currentPage is clamped.
func NewView(currentPage, pageCount int) View {
	if pageCount < 0 {
		pageCount = 0
	}
	current := 1
	if pageCount > 0 {
		current = clamp(currentPage, 1, pageCount)
	}
	return View{
		CurrentPage: current,
		PageCount:   pageCount,
		Items:       Range(current, pageCount),
	}
}

func (v View) CanPrevious() bool {
	return v.CurrentPage > 1
}

func (v View) CanNext() bool {
	return v.CurrentPage < v.PageCount
}

// IsCurrent reports whether the item is the highlighted page control.
func (v View) IsCurrent(item Item) bool {
	return !item.IsEllipsis() && item.Page() == v.CurrentPage
}
