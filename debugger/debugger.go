// Package debugger wraps the external debug-session integration. The rest of
// the program treats it as an opaque request/response API: enumerate threads,
// fetch one stack trace. It owns no state beyond the connection.
package debugger

import (
	"context"
	"errors"

	"github.com/stackuml-dev/stackuml/calltree"
)

// ErrNotStopped is returned when the target is running or has exited, so no
// threads or stacks can be inspected.
var ErrNotStopped = errors.New("target is not stopped; pause it or hit a breakpoint first")

// Thread is one stoppable unit of execution in the target.
type Thread struct {
	ID   int64
	Name string
}

// Client is one live debug connection. Calls may block until the target
// responds; there is no timeout beyond what ctx imposes.
type Client interface {
	// ListThreads enumerates the target's threads. Fails with ErrNotStopped
	// (or a transport error) when the target cannot be inspected.
	ListThreads(ctx context.Context) ([]Thread, error)
	// FetchStackTrace returns the thread's frames ordered innermost
	// (current) frame first, exactly as the wire protocol reports them.
	FetchStackTrace(ctx context.Context, threadID int64) ([]calltree.Frame, error)
	// Close tears down the connection, leaving the target running.
	Close() error
}
