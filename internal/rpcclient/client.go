// Package rpcclient provides a JSON-RPC 2.0 HTTP client with positional
// parameters, matching the wire format of chain and wallet node endpoints.
package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client is a JSON-RPC 2.0 HTTP client bound to a single endpoint URL.
// Each call opens a fresh request; there are no retries, no batching and
// no connection pooling beyond what net/http provides.
type Client struct {
	endpoint string
	http     *http.Client
	log      zerolog.Logger
	debug    bool
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout for every request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithLogger attaches a logger used for transport-level debug output.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithDebug enables logging of request and response bodies.
func WithDebug(enabled bool) Option {
	return func(c *Client) { c.debug = enabled }
}

// New creates a client targeting the given endpoint URL.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL the client sends requests to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// request is a JSON-RPC 2.0 request with a positional parameter array.
type request struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// response is a JSON-RPC 2.0 response.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// RPCError is the error object returned by the remote method. The remote
// code, message and data are carried through intact, never translated.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("rpc error %d: %s (%s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// TransportError wraps connection-level failures: refused connections,
// timeouts, DNS errors, or responses that are not JSON-RPC at all.
// Transport errors are never retried automatically.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Call invokes a JSON-RPC method with the given positional parameters and
// returns the raw result field. A remote error object is returned as
// *RPCError; connection failures are returned as *TransportError.
func (c *Client) Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}
	req := request{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	if c.debug {
		c.log.Debug().Str("url", c.endpoint).RawJSON("request", body).Msg("rpc send")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &TransportError{URL: c.endpoint, Err: err}
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{URL: c.endpoint, Err: err}
	}

	if c.debug {
		c.log.Debug().Str("url", c.endpoint).Int("status", httpResp.StatusCode).
			Bytes("response", data).Msg("rpc recv")
	}

	var rpcResp response
	if err := json.Unmarshal(data, &rpcResp); err != nil {
		// Nodes report method-level errors inside a JSON-RPC body even on
		// non-200 statuses, so anything undecodable is a transport problem.
		return nil, &TransportError{
			URL: c.endpoint,
			Err: fmt.Errorf("http %d: undecodable response: %w", httpResp.StatusCode, err),
		}
	}

	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}
	return rpcResp.Result, nil
}
