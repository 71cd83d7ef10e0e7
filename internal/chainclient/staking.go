package chainclient

import (
	"context"
	"encoding/json"
)

// Staking groups the stake-bonding and validator operations. All staking
// address arguments are normalized through FixAddress before transmission.
type Staking struct {
	svc   *Client
	creds *Credentials
}

// Deposit bonds the given UTxO inputs to a staking address.
func (s *Staking) Deposit(ctx context.Context, toAddress string, inputs interface{}, name, encKey string) (json.RawMessage, error) {
	key, err := s.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return s.svc.Call(ctx, "staking_depositStake",
		authParam(s.creds.WalletName(name), key), FixAddress(toAddress), inputs)
}

// State returns the on-chain state of a staking address, including any
// punishment record.
func (s *Staking) State(ctx context.Context, address, name, encKey string) (json.RawMessage, error) {
	key, err := s.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return s.svc.Call(ctx, "staking_state",
		authParam(s.creds.WalletName(name), key), FixAddress(address))
}

// Unbond schedules the given amount for unbonding.
func (s *Staking) Unbond(ctx context.Context, address, amount, name, encKey string) (json.RawMessage, error) {
	key, err := s.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return s.svc.Call(ctx, "staking_unbondStake",
		authParam(s.creds.WalletName(name), key), FixAddress(address), amount)
}

// WithdrawAllUnbonded withdraws every unbonded coin to a transfer address.
func (s *Staking) WithdrawAllUnbonded(ctx context.Context, fromAddress, toAddress string, viewKeys []string, name, encKey string) (json.RawMessage, error) {
	key, err := s.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	if viewKeys == nil {
		viewKeys = []string{}
	}
	return s.svc.Call(ctx, "staking_withdrawAllUnbondedStake",
		authParam(s.creds.WalletName(name), key),
		FixAddress(fromAddress), toAddress, viewKeys)
}

// Unjail lifts a jailed validator once its jail period has passed. The
// node's rejection of an early unjail is surfaced unchanged.
func (s *Staking) Unjail(ctx context.Context, address, name, encKey string) (json.RawMessage, error) {
	key, err := s.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return s.svc.Call(ctx, "staking_unjail",
		authParam(s.creds.WalletName(name), key), FixAddress(address))
}

// Join announces a council node joining the validator set.
func (s *Staking) Join(ctx context.Context, nodeName, nodePubKey, nodeStakingAddress, name, encKey string) (json.RawMessage, error) {
	key, err := s.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return s.svc.Call(ctx, "staking_validatorNodeJoin",
		authParam(s.creds.WalletName(name), key),
		nodeName, nodePubKey, FixAddress(nodeStakingAddress))
}
