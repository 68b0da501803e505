package debugger

import (
	"context"
	"fmt"
	"net"

	"github.com/go-delve/delve/service/api"
	"github.com/go-delve/delve/service/rpc2"
	"github.com/rs/zerolog/log"

	"github.com/stackuml-dev/stackuml/calltree"
)

// DelveClient talks to a headless Delve server (dlv --headless) over its
// JSON-RPC API. Goroutines stand in for threads.
type DelveClient struct {
	conn  *rpc2.RPCClient
	depth int
}

var _ Client = (*DelveClient)(nil)

// Dial connects to a Delve server at addr. depth caps how many frames a
// single stack-trace fetch returns.
func Dial(addr string, depth int) (*DelveClient, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connecting to delve at %s: %w", addr, err)
	}
	log.Debug().Str("addr", addr).Msg("connected to delve")
	return &DelveClient{conn: rpc2.NewClientFromConn(conn), depth: depth}, nil
}

func (c *DelveClient) ListThreads(ctx context.Context) ([]Thread, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	state, err := c.conn.GetState()
	if err != nil {
		return nil, fmt.Errorf("querying debugger state: %w", err)
	}
	if state.Exited || state.Running {
		return nil, ErrNotStopped
	}
	goroutines, _, err := c.conn.ListGoroutines(0, 0)
	if err != nil {
		return nil, fmt.Errorf("listing goroutines: %w", err)
	}
	threads := make([]Thread, 0, len(goroutines))
	for _, g := range goroutines {
		threads = append(threads, Thread{ID: g.ID, Name: goroutineName(g)})
	}
	return threads, nil
}

func (c *DelveClient) FetchStackTrace(ctx context.Context, threadID int64) ([]calltree.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stack, err := c.conn.Stacktrace(threadID, c.depth, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching stack trace for goroutine %d: %w", threadID, err)
	}
	frames := make([]calltree.Frame, 0, len(stack))
	for _, fr := range stack {
		frames = append(frames, calltree.Frame{
			Name: frameName(fr),
			Path: fr.File,
			Line: fr.Line,
		})
	}
	return frames, nil
}

func (c *DelveClient) Close() error {
	return c.conn.Disconnect(false)
}

func goroutineName(g *api.Goroutine) string {
	loc := g.UserCurrentLoc
	if loc.Function != nil {
		return loc.Function.Name()
	}
	return fmt.Sprintf("goroutine %d", g.ID)
}

// frameName falls back to the raw PC for frames with no symbol, e.g. stripped
// binaries.
func frameName(fr api.Stackframe) string {
	if fr.Function != nil {
		return fr.Function.Name()
	}
	return fmt.Sprintf("0x%x", fr.PC)
}
