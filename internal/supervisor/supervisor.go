// Package supervisor is an XML-RPC client for a supervisord-compatible
// process supervisor reachable over a unix domain socket. It is the
// out-of-band control channel the scenario runner uses to stop and start
// node process groups; it is independent of the chain RPC.
package supervisor

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/kolo/xmlrpc"
)

// ProcessStatus is the per-process result of a group lifecycle call.
type ProcessStatus struct {
	Name        string `xmlrpc:"name"`
	Group       string `xmlrpc:"group"`
	Status      int    `xmlrpc:"status"`
	Description string `xmlrpc:"description"`
}

// Client controls process groups through the supervisor's RPC interface.
type Client struct {
	rpc *xmlrpc.Client
}

// New connects to the supervisor socket. The HTTP layer dials the unix
// socket regardless of the placeholder host in the request URL.
func New(socketPath string) (*Client, error) {
	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", socketPath)
		},
	}
	rpc, err := xmlrpc.NewClient("http://supervisor/RPC2", transport)
	if err != nil {
		return nil, fmt.Errorf("connect supervisor socket %s: %w", socketPath, err)
	}
	return &Client{rpc: rpc}, nil
}

// StartProcessGroup starts every process in the named group.
func (c *Client) StartProcessGroup(name string) error {
	var statuses []ProcessStatus
	if err := c.rpc.Call("supervisor.startProcessGroup", name, &statuses); err != nil {
		return fmt.Errorf("start process group %s: %w", name, err)
	}
	return nil
}

// StopProcessGroup stops every process in the named group.
func (c *Client) StopProcessGroup(name string) error {
	var statuses []ProcessStatus
	if err := c.rpc.Call("supervisor.stopProcessGroup", name, &statuses); err != nil {
		return fmt.Errorf("stop process group %s: %w", name, err)
	}
	return nil
}
