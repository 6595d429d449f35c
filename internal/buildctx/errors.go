package buildctx

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
)

// ErrorKind is the taxonomy from spec §7. These are kinds, not Go error
// types: a single sentinel-wrapping error carries one of these as a field.
type ErrorKind string

const (
	ErrResourceMissing    ErrorKind = "resource_missing"
	ErrNoModel            ErrorKind = "no_model"
	ErrModelCycle         ErrorKind = "model_cycle"
	ErrModelDepthExceeded ErrorKind = "model_depth_exceeded"
	ErrInvalidFace        ErrorKind = "invalid_face"
	ErrNotReady           ErrorKind = "not_ready"
	ErrTransportFailure   ErrorKind = "transport_failure"
	ErrIndexOverflow      ErrorKind = "index_overflow"
)

// RecoverableError tags an error with the kind that caused it, so the
// build-session summary can count occurrences per kind without string
// matching.
type RecoverableError struct {
	Kind ErrorKind
	Err  error
}

func (e *RecoverableError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *RecoverableError) Unwrap() error { return e.Err }

// Wrap builds a RecoverableError.
func Wrap(kind ErrorKind, err error) *RecoverableError {
	return &RecoverableError{Kind: kind, Err: err}
}

// ChunkFailure records a chunk reported as terminally failed through
// Summary.RecordFailure. Nothing in this module re-enqueues a failed chunk
// or calls RecordFailure: the build session counts a failed chunk merge
// with Record(ErrTransportFailure, ...) and does not retry it.
type ChunkFailure struct {
	ChunkOrigin [3]int32
	Err         error
}

// Summary accumulates per-error-kind counts and terminal chunk failures
// across one build session (spec §7 "final summary reports counts per error
// kind"). Safe for concurrent use by worker goroutines.
type Summary struct {
	mu       sync.Mutex
	counts   map[ErrorKind]int
	failed   []ChunkFailure
	combined error
}

// NewSummary returns an empty, ready-to-use Summary.
func NewSummary() *Summary {
	return &Summary{counts: make(map[ErrorKind]int)}
}

// Record counts one occurrence of a recoverable error and folds it into the
// combined multierr chain for later inspection.
func (s *Summary) Record(kind ErrorKind, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[kind]++
	s.combined = multierr.Append(s.combined, Wrap(kind, err))
}

// RecordFailure marks a chunk as terminally failed and folds its error into
// the combined chain as ErrTransportFailure.
func (s *Summary) RecordFailure(origin [3]int32, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = append(s.failed, ChunkFailure{ChunkOrigin: origin, Err: err})
	s.combined = multierr.Append(s.combined, Wrap(ErrTransportFailure, err))
}

// Counts returns a snapshot of per-kind counts.
func (s *Summary) Counts() map[ErrorKind]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[ErrorKind]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

// Failed returns a snapshot of terminally-failed chunks.
func (s *Summary) Failed() []ChunkFailure {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChunkFailure, len(s.failed))
	copy(out, s.failed)
	return out
}

// Err returns the combined multierr chain, or nil if nothing was recorded.
func (s *Summary) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.combined
}
