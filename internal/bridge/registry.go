// Package bridge carries the desktop shell's channel-based request traffic
// over a single WebSocket connection. Requests name a channel
// ("student:create", "query:run"); responses are pushed back asynchronously
// on "<channel>:response" with an HTTP-style status code and the same
// envelope bodies the REST surface produces.
package bridge

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/oguzhan/uniregistry/internal/pkg/respond"
)

// Request is one inbound frame. ID is echoed back untouched so the shell
// can correlate responses; Payload's shape depends on the channel.
type Request struct {
	Channel string          `json:"channel"`
	ID      json.RawMessage `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is one outbound frame.
type Response struct {
	Channel    string          `json:"channel"`
	ID         json.RawMessage `json:"id,omitempty"`
	StatusCode int             `json:"statusCode"`
	Data       interface{}     `json:"data"`
}

// HandlerFunc executes one channel's operation and returns the status code
// and envelope to push back.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) (int, interface{})

// Registry maps channel names to handlers.
type Registry struct {
	handlers map[string]HandlerFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]HandlerFunc)}
}

// Register binds a handler to a channel name.
func (r *Registry) Register(channel string, fn HandlerFunc) {
	r.handlers[channel] = fn
}

// Channels returns the registered channel names.
func (r *Registry) Channels() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

// Dispatch routes one request to its handler and wraps the outcome in a
// response frame. Unknown channels yield a 400.
func (r *Registry) Dispatch(ctx context.Context, req *Request) *Response {
	resp := &Response{
		Channel: req.Channel + ":response",
		ID:      req.ID,
	}

	fn, ok := r.handlers[req.Channel]
	if !ok {
		resp.StatusCode = http.StatusBadRequest
		resp.Data = respond.ErrorEnvelope{Error: "Unknown channel: " + req.Channel}
		return resp
	}

	resp.StatusCode, resp.Data = fn(ctx, req.Payload)
	return resp
}
