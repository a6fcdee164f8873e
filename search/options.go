package search

// Option is one selectable entry returned by a search.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Filter hides the options that are already selected.
func Filter(options []Option, selected []Option) []Option {
	if len(selected) == 0 {
		return options
	}
	chosen := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		chosen[s.Value] = struct{}{}
	}
	result := make([]Option, 0, len(options))
	for _, o := range options {
		if _, ok := chosen[o.Value]; !ok {
			result = append(result, o)
		}
	}
	return result
}

// HasMore reports whether a "load more" control makes sense.
func HasMore(total, loaded int) bool {
	return total > 0 && total > loaded
}
