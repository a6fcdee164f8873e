package table

const DefaultNoResults = "No results"

type BodyKind string

const (
	BodyError     BodyKind = "error"
	BodyRows      BodyKind = "rows"
	BodyEmpty     BodyKind = "empty"
	BodyNoResults BodyKind = "noResults"
	// BodyFiller keeps the table height while nothing has been fetched yet.
	BodyFiller BodyKind = "filler"
)

type BodyState struct {
	Kind    BodyKind    `json:"kind"`
	Message string      `json:"message,omitempty"`
	Empty   interface{} `json:"empty,omitempty"`
	// Loading is drawn as an overlay on top of whatever the body holds.
	Loading bool `json:"loading"`
}

// Body decides what the table body shows for rowCount rows of fetched data.
func (r *Reducer) Body(rowCount int) BodyState {
	opts := r.options
	state := BodyState{Loading: opts.Loading}
	switch {
	case opts.Error != "":
		state.Kind = BodyError
		state.Message = opts.Error
	case rowCount > 0:
		state.Kind = BodyRows
	case opts.Empty != nil:
		state.Kind = BodyEmpty
		state.Empty = opts.Empty
	case !opts.Loading && opts.Pagination.Page != nil && *opts.Pagination.Page >= 0:
		state.Kind = BodyNoResults
		state.Message = opts.NoResults
		if state.Message == "" {
			state.Message = DefaultNoResults
		}
	default:
		state.Kind = BodyFiller
	}
	return state
}
