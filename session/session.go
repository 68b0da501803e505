// Package session ties the pieces together: it owns the one call-stack tree
// for the lifetime of a debug session and runs the record, generate and
// reset actions against it.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/stackuml-dev/stackuml/calltree"
	"github.com/stackuml-dev/stackuml/debugger"
	"github.com/stackuml-dev/stackuml/plantuml"
)

// ErrPickCancelled is returned by a ThreadPicker when the user declines to
// choose. It ends the action without touching the tree and is informational
// rather than an error to surface loudly.
var ErrPickCancelled = errors.New("thread selection cancelled")

// ErrNoThreads means the debugger reported an empty thread list.
var ErrNoThreads = errors.New("no threads available; is the target stopped at a breakpoint?")

// ThreadPicker resolves which thread to record. It may block on user input
// indefinitely; returning ErrPickCancelled is the normal decline path.
type ThreadPicker func(ctx context.Context, threads []debugger.Thread) (debugger.Thread, error)

// Session owns the tree. The mutex is there because merge is a multi-step
// read-then-write traversal: a host that serializes commands never contends
// on it, but library callers running actions from several goroutines do.
type Session struct {
	mu   sync.Mutex
	id   uuid.UUID
	tree *calltree.Tree
	dbg  debugger.Client
	pick ThreadPicker
	cfg  Config
}

// New starts a session with an empty tree.
func New(dbg debugger.Client, pick ThreadPicker, cfg Config) *Session {
	return &Session{
		id:   uuid.New(),
		tree: calltree.New(cfg.MatchColumn),
		dbg:  dbg,
		pick: pick,
		cfg:  cfg,
	}
}

// ID identifies this session in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Record fetches one stack trace and merges it into the tree. The tree is
// only touched once both debugger round-trips have fully succeeded, so a
// failure anywhere leaves it exactly as it was.
func (s *Session) Record(ctx context.Context) error {
	frames, err := s.capture(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.tree.Merge(frames)
	s.mu.Unlock()
	log.Debug().
		Str("session", s.id.String()).
		Int("frames", len(frames)).
		Msg("merged stack trace")
	return nil
}

// Generate records one more trace and serializes the accumulated tree.
func (s *Session) Generate(ctx context.Context) (string, error) {
	if err := s.Record(ctx); err != nil {
		return "", err
	}
	return s.Diagram(), nil
}

// Diagram serializes the current tree without touching the debugger.
func (s *Session) Diagram() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return plantuml.Serialize(s.tree, s.cfg.MaxLineWidth)
}

// Reset clears the tree back to root-only. Idempotent.
func (s *Session) Reset() {
	s.mu.Lock()
	s.tree.Reset()
	s.mu.Unlock()
	log.Debug().Str("session", s.id.String()).Msg("tree reset")
}

// Empty reports whether anything has been recorded since the last reset.
func (s *Session) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Empty()
}

// capture runs the two debugger round-trips and the interactive pick,
// returning a complete root-to-leaf trace ready to merge.
func (s *Session) capture(ctx context.Context) ([]calltree.Frame, error) {
	threads, err := s.dbg.ListThreads(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing threads: %w", err)
	}
	if len(threads) == 0 {
		return nil, ErrNoThreads
	}
	picked, err := s.pick(ctx, threads)
	if err != nil {
		return nil, err
	}
	trace, err := s.dbg.FetchStackTrace(ctx, picked.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching stack trace for thread %d: %w", picked.ID, err)
	}
	return calltree.ReverseFrames(trace), nil
}
