// ABOUTME: Registry mapping each mode to its analysis handler.
// ABOUTME: Resolve is total: unknown or empty modes get the default handler.

package mode

import (
	"context"
	"fmt"
)

// Request carries one user query into a handler.
type Request struct {
	UserID int64
	ChatID int64
	Query  string
}

// Response is a handler's rendering decision: on OK the Markdown payload
// (plus any plot references) is delivered through the chunking pipeline; on
// failure Err is shown to the user as a single escaped message.
type Response struct {
	OK       bool
	Markdown string
	Err      string
	Plots    []string
}

// Failure builds a failed response carrying a user-facing error string.
func Failure(err string) Response {
	return Response{Err: err}
}

// Success builds a successful response with markdown to render.
func Success(md string, plots ...string) Response {
	return Response{OK: true, Markdown: md, Plots: plots}
}

// Handler serves one analysis request. Implementations never return raw
// transport faults; they convert failure into a Response with Err set.
type Handler interface {
	Handle(ctx context.Context, req Request) Response
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, req Request) Response

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, req Request) Response {
	return f(ctx, req)
}

// Registry is the fixed mode-to-handler table. It is built once at startup
// and validated exhaustively: every cataloged mode must be bound and a
// default must exist, so Resolve can never fail at runtime.
type Registry struct {
	handlers map[Mode]Handler
	fallback Handler
}

// NewRegistry validates the handler table against the mode catalog.
// Returns an error if the catalog failed to parse, any cataloged mode has
// no handler, or no default fallback is provided.
func NewRegistry(handlers map[Mode]Handler, fallback Handler) (*Registry, error) {
	if catalogErr != nil {
		return nil, catalogErr
	}
	if fallback == nil {
		return nil, fmt.Errorf("registry requires a default handler")
	}
	for _, m := range All() {
		if handlers[m] == nil {
			return nil, fmt.Errorf("no handler bound for mode %q", m)
		}
	}
	table := make(map[Mode]Handler, len(handlers))
	for m, h := range handlers {
		table[m] = h
	}
	return &Registry{handlers: table, fallback: fallback}, nil
}

// Resolve returns the handler for m, or the default handler when m is None
// or not part of the mode set. The fallback is deliberate policy, not an
// error path.
func (r *Registry) Resolve(m Mode) Handler {
	if h, ok := r.handlers[m]; ok && h != nil {
		return h
	}
	return r.fallback
}
