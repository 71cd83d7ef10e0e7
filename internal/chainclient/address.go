package chainclient

import (
	"context"
	"encoding/json"
	"strings"
)

// Address type variants accepted by address commands.
const (
	AddressTypeStaking  = "staking"
	AddressTypeTransfer = "transfer"
)

// selectByAddressType picks the staking or transfer variant of a method
// pair, failing before any network call on an unknown type.
func selectByAddressType(addrType, stakingMethod, transferMethod string) (string, error) {
	switch strings.ToLower(addrType) {
	case AddressTypeStaking:
		return stakingMethod, nil
	case AddressTypeTransfer:
		return transferMethod, nil
	default:
		return "", invalidArgf("address type must be %q or %q, got %q",
			AddressTypeStaking, AddressTypeTransfer, addrType)
	}
}

// Address groups the wallet address operations.
type Address struct {
	svc   *Client
	creds *Credentials
}

// List returns the wallet's staking or transfer addresses.
func (a *Address) List(ctx context.Context, name, addrType, encKey string) (json.RawMessage, error) {
	method, err := selectByAddressType(addrType,
		"wallet_listStakingAddresses", "wallet_listTransferAddresses")
	if err != nil {
		return nil, err
	}
	key, err := a.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return a.svc.Call(ctx, method, authParam(a.creds.WalletName(name), key))
}

// Create derives a new address in the wallet.
func (a *Address) Create(ctx context.Context, name, addrType, encKey string) (json.RawMessage, error) {
	method, err := selectByAddressType(addrType,
		"wallet_createStakingAddress", "wallet_createTransferAddress")
	if err != nil {
		return nil, err
	}
	key, err := a.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return a.svc.Call(ctx, method, authParam(a.creds.WalletName(name), key))
}

// CreateWatch adds a watch-only address for the given public key.
func (a *Address) CreateWatch(ctx context.Context, publicKey, name, addrType, encKey string) (json.RawMessage, error) {
	method, err := selectByAddressType(addrType,
		"wallet_createWatchStakingAddress", "wallet_createWatchTransferAddress")
	if err != nil {
		return nil, err
	}
	key, err := a.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return a.svc.Call(ctx, method, authParam(a.creds.WalletName(name), key), publicKey)
}
