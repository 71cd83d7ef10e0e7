package chainclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// HeightLatest is the sentinel resolved to the current chain height via a
// status query immediately before use.
const HeightLatest = "latest"

// Blockchain groups the chain RPC queries. No credentials are involved.
type Blockchain struct {
	svc *Client
}

// Status returns the node status, including sync_info.
func (b *Blockchain) Status(ctx context.Context) (json.RawMessage, error) {
	return b.svc.CallChain(ctx, "status")
}

// Info returns node network information.
func (b *Blockchain) Info(ctx context.Context) (json.RawMessage, error) {
	return b.svc.CallChain(ctx, "info")
}

// Genesis returns the genesis document.
func (b *Blockchain) Genesis(ctx context.Context) (json.RawMessage, error) {
	return b.svc.CallChain(ctx, "genesis")
}

// UnconfirmedTxs returns the mempool contents.
func (b *Blockchain) UnconfirmedTxs(ctx context.Context) (json.RawMessage, error) {
	return b.svc.CallChain(ctx, "unconfirmed_txs")
}

// SyncInfo is the subset of the status result the client interprets.
type SyncInfo struct {
	LatestBlockHeight string `json:"latest_block_height"`
	LatestBlockTime   string `json:"latest_block_time"`
}

// StatusInfo carries the decoded sync_info of a status call.
type StatusInfo struct {
	SyncInfo SyncInfo `json:"sync_info"`
}

// StatusInfo fetches and decodes the node status.
func (b *Blockchain) StatusInfo(ctx context.Context) (*StatusInfo, error) {
	raw, err := b.Status(ctx)
	if err != nil {
		return nil, err
	}
	var info StatusInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	return &info, nil
}

// LatestHeight returns the current chain height from a fresh status call.
func (b *Blockchain) LatestHeight(ctx context.Context) (int64, error) {
	info, err := b.StatusInfo(ctx)
	if err != nil {
		return 0, err
	}
	height, err := strconv.ParseInt(info.SyncInfo.LatestBlockHeight, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse latest block height %q: %w",
			info.SyncInfo.LatestBlockHeight, err)
	}
	return height, nil
}

// LatestBlockTime returns the timestamp of the latest block.
func (b *Blockchain) LatestBlockTime(ctx context.Context) (time.Time, error) {
	info, err := b.StatusInfo(ctx)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, info.SyncInfo.LatestBlockTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse latest block time %q: %w",
			info.SyncInfo.LatestBlockTime, err)
	}
	return t, nil
}

// ValidatorsResult is the decoded shape of a validators call.
type ValidatorsResult struct {
	BlockHeight string            `json:"block_height"`
	Validators  []json.RawMessage `json:"validators"`
}

// Validators returns the validator set at the given height, or at the
// current height when height is empty.
func (b *Blockchain) Validators(ctx context.Context, height string) (json.RawMessage, error) {
	if height == "" {
		return b.svc.CallChain(ctx, "validators", nil)
	}
	h, err := validateHeight(height)
	if err != nil {
		return nil, err
	}
	return b.svc.CallChain(ctx, "validators", h)
}

// ValidatorSet fetches and decodes the current validator set.
func (b *Blockchain) ValidatorSet(ctx context.Context) (*ValidatorsResult, error) {
	raw, err := b.Validators(ctx, "")
	if err != nil {
		return nil, err
	}
	var result ValidatorsResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode validators: %w", err)
	}
	return &result, nil
}

// Block returns the block at the given height ("latest" accepted).
func (b *Blockchain) Block(ctx context.Context, height string) (json.RawMessage, error) {
	h, err := b.resolveHeight(ctx, height)
	if err != nil {
		return nil, err
	}
	return b.svc.CallChain(ctx, "block", h)
}

// BlockResults returns the execution results at the given height.
func (b *Blockchain) BlockResults(ctx context.Context, height string) (json.RawMessage, error) {
	h, err := b.resolveHeight(ctx, height)
	if err != nil {
		return nil, err
	}
	return b.svc.CallChain(ctx, "block_results", h)
}

// Chain returns block metadata over [minHeight, maxHeight]; maxHeight
// accepts the latest sentinel.
func (b *Blockchain) Chain(ctx context.Context, minHeight, maxHeight string) (json.RawMessage, error) {
	lo, err := validateHeight(minHeight)
	if err != nil {
		return nil, err
	}
	hi, err := b.resolveHeight(ctx, maxHeight)
	if err != nil {
		return nil, err
	}
	return b.svc.CallChain(ctx, "blockchain", lo, hi)
}

// Commit returns the commit at the given height ("latest" accepted).
func (b *Blockchain) Commit(ctx context.Context, height string) (json.RawMessage, error) {
	h, err := b.resolveHeight(ctx, height)
	if err != nil {
		return nil, err
	}
	return b.svc.CallChain(ctx, "commit", h)
}

// Query performs an abci_query. Address-like data is normalized; empty
// data and height are transmitted as null.
func (b *Blockchain) Query(ctx context.Context, path, data, height string, proof bool) (json.RawMessage, error) {
	var dataArg interface{}
	if data != "" {
		dataArg = FixAddress(data)
	}
	var heightArg interface{}
	if height != "" {
		h, err := validateHeight(height)
		if err != nil {
			return nil, err
		}
		heightArg = h
	}
	return b.svc.CallChain(ctx, "abci_query", path, dataArg, heightArg, proof)
}

// BroadcastTxCommit broadcasts a transaction and waits for it to be
// committed to a block.
func (b *Blockchain) BroadcastTxCommit(ctx context.Context, tx string) (json.RawMessage, error) {
	return b.svc.CallChain(ctx, "broadcast_tx_commit", tx)
}

// BroadcastTxSync broadcasts a transaction and waits for the mempool check.
func (b *Blockchain) BroadcastTxSync(ctx context.Context, tx string) (json.RawMessage, error) {
	return b.svc.CallChain(ctx, "broadcast_tx_sync", tx)
}

// BroadcastTxAsync broadcasts a transaction without waiting.
func (b *Blockchain) BroadcastTxAsync(ctx context.Context, tx string) (json.RawMessage, error) {
	return b.svc.CallChain(ctx, "broadcast_tx_async", tx)
}

// Tx looks up a committed transaction by id.
func (b *Blockchain) Tx(ctx context.Context, txid string) (json.RawMessage, error) {
	return b.svc.CallChain(ctx, "tx", txid)
}

// resolveHeight turns the latest sentinel (or an empty height) into the
// chain height observed by an immediately preceding status call, and
// validates literal heights.
func (b *Blockchain) resolveHeight(ctx context.Context, height string) (string, error) {
	if height == "" || height == HeightLatest {
		latest, err := b.LatestHeight(ctx)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(latest, 10), nil
	}
	return validateHeight(height)
}

// validateHeight requires a literal non-negative decimal height.
func validateHeight(height string) (string, error) {
	if _, err := strconv.ParseUint(height, 10, 63); err != nil {
		return "", invalidArgf("height must be a non-negative integer or %q, got %q",
			HeightLatest, height)
	}
	return height, nil
}
