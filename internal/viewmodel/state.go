package viewmodel

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrBusy is returned when another operation of the same view-model is
	// still in flight.
	ErrBusy = errors.New("another operation is in progress")
	// ErrNotLoaded is returned when an operation needs an item that is not in
	// the loaded collection.
	ErrNotLoaded = errors.New("item is not loaded")
)

// Status is the lifecycle state of a view-model.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// lastUpdatedLayout renders summary dates, for example "Mar 4, 2025".
const lastUpdatedLayout = "Jan 2, 2006"

// noDate is shown when a collection has no timestamps.
const noDate = "—"

// state is the status machine shared by every view-model. mu also guards the
// embedding view-model's collection.
type state struct {
	mu     sync.Mutex
	status Status
	err    error
	busy   bool
}

// begin enters loading, or fails with ErrBusy.
func (s *state) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	s.status = StatusLoading
	s.err = nil
	return nil
}

// finish leaves loading. apply runs under the lock only when err is nil.
func (s *state) finish(err error, apply func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		s.status = StatusErrored
		s.err = err
		return err
	}
	if apply != nil {
		apply()
	}
	s.status = StatusReady
	return nil
}

// fail records an error found before any call was made. While another
// operation is in flight it reports ErrBusy and leaves the state alone.
func (s *state) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.status = StatusErrored
	s.err = err
	return err
}

// Status returns the current lifecycle state.
func (s *state) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err returns the error of the last failed operation, or nil.
func (s *state) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ErrorText returns the user-facing text of the last failure, or "".
func (s *state) ErrorText() string {
	if err := s.Err(); err != nil {
		return err.Error()
	}
	return ""
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return noDate
	}
	return t.UTC().Format(lastUpdatedLayout)
}

// replaceByID swaps the first element whose id matches and reports whether
// one did.
func replaceByID[T any](items []T, id func(T) string, v T) bool {
	for i := range items {
		if id(items[i]) == id(v) {
			items[i] = v
			return true
		}
	}
	return false
}

func removeByID[T any](items []T, id func(T) string, target string) []T {
	out := items[:0:0]
	for _, it := range items {
		if id(it) != target {
			out = append(out, it)
		}
	}
	return out
}
