package chainclient

import (
	"context"
	"encoding/json"
)

// RPC composes the domain facades over one service client. It is the root
// object the CLI command tree and the scenario runner are bound to.
type RPC struct {
	Wallet   *Wallet
	Staking  *Staking
	Address  *Address
	MultiSig *MultiSig
	Chain    *Blockchain

	svc *Client
}

// NewRPC builds the aggregate facade.
func NewRPC(svc *Client, creds *Credentials) *RPC {
	return &RPC{
		Wallet:   &Wallet{svc: svc, creds: creds},
		Staking:  &Staking{svc: svc, creds: creds},
		Address:  &Address{svc: svc, creds: creds},
		MultiSig: &MultiSig{svc: svc, creds: creds},
		Chain:    &Blockchain{svc: svc},
		svc:      svc,
	}
}

// RawTx builds an unsigned raw transaction from explicit inputs, outputs
// and view keys, forwarded verbatim to the wallet endpoint.
func (r *RPC) RawTx(ctx context.Context, inputs, outputs, viewKeys interface{}) (json.RawMessage, error) {
	return r.svc.Call(ctx, "transaction_createRaw", inputs, outputs, viewKeys)
}
