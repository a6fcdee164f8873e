// Package search implements debounced, last-request-wins search for select and search boxes.
package search

import (
	"context"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/datagrid/datagrid-apis/log"
)

// ErrorMessage is what the user sees when the search function fails.
const ErrorMessage = "An error occurred"

type SearchFunc func(ctx context.Context, query string) ([]Option, error)

type State struct {
	Query string   `json:"query"`
	Items []Option `json:"items"`
	// Searching is true once results for a non empty query are shown.
	Searching bool   `json:"searching"`
	Loading   bool   `json:"loading"`
	Error     string `json:"error,omitempty"`
}

// Searcher runs a caller supplied search behind a Debouncer. Every run takes a new sequence token and
// a response is applied only if its token is still the latest one issued.
type Searcher struct {
	mutex     sync.Mutex
	search    SearchFunc
	debouncer *Debouncer
	logger    log.Logger
	sequence  *atomic.Uint64
	state     State
	listeners []func(State)
	cancel    context.CancelFunc
	inflight  sync.WaitGroup
	closed    bool

	// beforeApply runs between a search returning and its response being applied.
	beforeApply func()
}

func NewSearcher(search SearchFunc, delay time.Duration, logger log.Logger) *Searcher {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Searcher{
		search:    search,
		debouncer: NewDebouncer(delay),
		logger:    logger,
		sequence:  atomic.NewUint64(0),
	}
}

// OnChange registers fn to be called with every new state.
func (s *Searcher) OnChange(fn func(State)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Searcher) State() State {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.snapshot()
}

func (s *Searcher) snapshot() State {
	state := s.state
	state.Items = append([]Option(nil), s.state.Items...)
	return state
}

// Input records a keystroke. The search itself runs once typing pauses for the debounce delay.
func (s *Searcher) Input(query string) {
	s.update(func(state *State) {
		state.Query = query
		if s.search != nil {
			state.Loading = true
		}
	})
	if s.search == nil {
		return
	}
	s.debouncer.Do(func() {
		s.run(query)
	})
}

func (s *Searcher) run(query string) {
	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		return
	}
	token := s.sequence.Inc()
	if query == "" {
		s.mutex.Unlock()
		s.apply(token, func(state *State) {
			state.Error = ""
			state.Searching = false
			state.Items = nil
			state.Loading = false
		})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	if s.cancel != nil {
		// The previous search is superseded, its response would be discarded anyway.
		s.cancel()
	}
	s.cancel = cancel
	s.inflight.Add(1)
	s.mutex.Unlock()
	defer s.inflight.Done()
	defer cancel()

	s.apply(token, func(state *State) {
		state.Error = ""
	})

	items, err := s.search(ctx, query)
	if s.beforeApply != nil {
		s.beforeApply()
	}

	var applied bool
	if err != nil {
		applied = s.apply(token, func(state *State) {
			state.Error = ErrorMessage
			state.Loading = false
		})
		if applied {
			s.logger.Error("unable to search items",
				"query", query,
				"error", err)
		}
	} else {
		applied = s.apply(token, func(state *State) {
			state.Items = items
			state.Searching = true
			state.Loading = false
		})
	}

	if !applied {
		s.logger.Debug("discarding stale search response",
			"query", query,
			"token", token)
	}
}

// apply changes the state only while token is the latest one issued. The token is compared under
// the same lock that guards the state, so a newer run can not slip in between.
func (s *Searcher) apply(token uint64, fn func(*State)) bool {
	s.mutex.Lock()
	if token != s.sequence.Load() {
		s.mutex.Unlock()
		return false
	}
	fn(&s.state)
	state := s.snapshot()
	listeners := append([]func(State){}, s.listeners...)
	s.mutex.Unlock()

	s.notify(listeners, state)
	return true
}

func (s *Searcher) update(fn func(*State)) {
	s.mutex.Lock()
	fn(&s.state)
	state := s.snapshot()
	listeners := append([]func(State){}, s.listeners...)
	s.mutex.Unlock()

	s.notify(listeners, state)
}

func (s *Searcher) notify(listeners []func(State), state State) {
	for _, listener := range listeners {
		listener(state)
	}
}

// Close drops any pending search, cancels the running one and waits for it to return. Searches
// fired after Close do not run.
func (s *Searcher) Close() {
	s.debouncer.Stop()
	s.mutex.Lock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mutex.Unlock()
	s.inflight.Wait()
}
