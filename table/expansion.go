package table

// ToggleExpanded flips the detail panel of the row at index. Expansion is local to the reducer
// and lost with it.
func (r *Reducer) ToggleExpanded(index int) {
	if r.expanded[index] {
		delete(r.expanded, index)
		return
	}
	r.expanded[index] = true
}

func (r *Reducer) IsExpanded(index int) bool {
	return r.options.DefaultExpanded || r.expanded[index]
}

func (r *Reducer) ResetExpanded() {
	r.expanded = make(map[int]bool)
}

// RowDetails renders the detail panel of an expanded row. The second result is false when the row
// is collapsed or the caller has nothing to show for it.
func (r *Reducer) RowDetails(index int, row interface{}) (interface{}, bool) {
	if !r.IsExpanded(index) || r.callbacks.RenderRowDetails == nil {
		return nil, false
	}
	details := r.callbacks.RenderRowDetails(row)
	if details == nil {
		return nil, false
	}
	return details, true
}
