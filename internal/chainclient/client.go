// Package chainclient exposes the node's wallet and chain JSON-RPC surfaces
// as typed facades with fixed method-name mappings.
package chainclient

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/chainward/chainctl/internal/config"
	"github.com/chainward/chainctl/internal/rpcclient"
)

// Caller abstracts the JSON-RPC transport so tests can record the exact
// method and argument tuples a facade produces.
type Caller interface {
	Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error)
}

// Client holds the two endpoint callers derived from a single base port:
// the wallet RPC on base+9 and the chain RPC on base+7.
type Client struct {
	wallet Caller
	chain  Caller
}

// New creates a client for the endpoints derived from cfg.BasePort.
func New(cfg *config.Config, log zerolog.Logger) *Client {
	debug := cfg.HTTPDebugLevel > 0
	return &Client{
		wallet: rpcclient.New(cfg.WalletRPCURL(),
			rpcclient.WithLogger(log), rpcclient.WithDebug(debug)),
		chain: rpcclient.New(cfg.ChainRPCURL(),
			rpcclient.WithLogger(log), rpcclient.WithDebug(debug)),
	}
}

// NewWithCallers creates a client over explicit transports. Used by tests
// and by the scenario runner against ad-hoc endpoints.
func NewWithCallers(wallet, chain Caller) *Client {
	return &Client{wallet: wallet, chain: chain}
}

// Call sends a request to the wallet/client RPC endpoint.
func (c *Client) Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	return c.wallet.Call(ctx, method, params...)
}

// CallChain sends a request to the consensus/chain RPC endpoint.
func (c *Client) CallChain(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	return c.chain.Call(ctx, method, params...)
}
