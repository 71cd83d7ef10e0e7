package chainclient

import (
	"context"
	"encoding/json"
)

// Wallet type variants accepted by wallet create.
const (
	WalletTypeBasic = "Basic"
	WalletTypeHD    = "HD"
)

// Wallet groups the wallet lifecycle and query operations.
type Wallet struct {
	svc   *Client
	creds *Credentials
}

// EncKey retrieves the wallet's encryption key using its passphrase.
func (w *Wallet) EncKey(ctx context.Context, name, passphrase string) (json.RawMessage, error) {
	phrase, err := w.creds.Passphrase(passphrase)
	if err != nil {
		return nil, err
	}
	return w.svc.Call(ctx, "wallet_getEncKey", authParam(w.creds.WalletName(name), phrase))
}

// Balance returns the wallet balance.
func (w *Wallet) Balance(ctx context.Context, name, encKey string) (json.RawMessage, error) {
	key, err := w.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return w.svc.Call(ctx, "wallet_balance", authParam(w.creds.WalletName(name), key))
}

// List returns all wallet names. No credential is required.
func (w *Wallet) List(ctx context.Context) (json.RawMessage, error) {
	return w.svc.Call(ctx, "wallet_list")
}

// UTxO returns the wallet's unspent outputs.
func (w *Wallet) UTxO(ctx context.Context, name, encKey string) (json.RawMessage, error) {
	key, err := w.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return w.svc.Call(ctx, "wallet_listUTxO", authParam(w.creds.WalletName(name), key))
}

// Create creates a new wallet of the given type (Basic or HD).
func (w *Wallet) Create(ctx context.Context, name, walletType, passphrase string) (json.RawMessage, error) {
	if walletType != WalletTypeBasic && walletType != WalletTypeHD {
		return nil, invalidArgf("wallet type must be %q or %q, got %q",
			WalletTypeBasic, WalletTypeHD, walletType)
	}
	phrase, err := w.creds.Passphrase(passphrase)
	if err != nil {
		return nil, err
	}
	return w.svc.Call(ctx, "wallet_create",
		authParam(w.creds.WalletName(name), phrase), walletType)
}

// Restore recreates an HD wallet from its mnemonic and returns the enckey.
func (w *Wallet) Restore(ctx context.Context, mnemonics, name, passphrase string) (json.RawMessage, error) {
	phrase, err := w.creds.Passphrase(passphrase)
	if err != nil {
		return nil, err
	}
	return w.svc.Call(ctx, "wallet_restore",
		authParam(w.creds.WalletName(name), phrase), mnemonics)
}

// RestoreBasic recreates a basic wallet from a hex private view key.
func (w *Wallet) RestoreBasic(ctx context.Context, privateViewKey, name, passphrase string) (json.RawMessage, error) {
	phrase, err := w.creds.Passphrase(passphrase)
	if err != nil {
		return nil, err
	}
	return w.svc.Call(ctx, "wallet_restoreBasic",
		authParam(w.creds.WalletName(name), phrase), privateViewKey)
}

// Delete removes a wallet.
func (w *Wallet) Delete(ctx context.Context, name, passphrase string) (json.RawMessage, error) {
	phrase, err := w.creds.Passphrase(passphrase)
	if err != nil {
		return nil, err
	}
	return w.svc.Call(ctx, "wallet_delete", authParam(w.creds.WalletName(name), phrase))
}

// ViewKey returns the wallet view key, private form when requested.
func (w *Wallet) ViewKey(ctx context.Context, name string, private bool, encKey string) (json.RawMessage, error) {
	key, err := w.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return w.svc.Call(ctx, "wallet_getViewKey",
		authParam(w.creds.WalletName(name), key), private)
}

// ListPubKey returns the wallet's public keys.
func (w *Wallet) ListPubKey(ctx context.Context, name, encKey string) (json.RawMessage, error) {
	key, err := w.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return w.svc.Call(ctx, "wallet_listPublicKeys", authParam(w.creds.WalletName(name), key))
}

// Transactions pages through the wallet's transaction history.
func (w *Wallet) Transactions(ctx context.Context, name string, offset, limit int, reversed bool, encKey string) (json.RawMessage, error) {
	key, err := w.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return w.svc.Call(ctx, "wallet_transactions",
		authParam(w.creds.WalletName(name), key), offset, limit, reversed)
}

// Send transfers the given amount (base units, decimal string) to a
// transfer address, sharing the transaction with the given view keys.
func (w *Wallet) Send(ctx context.Context, toAddress, amount, name string, viewKeys []string, encKey string) (json.RawMessage, error) {
	key, err := w.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	if viewKeys == nil {
		viewKeys = []string{}
	}
	return w.svc.Call(ctx, "wallet_sendToAddress",
		authParam(w.creds.WalletName(name), key), toAddress, amount, viewKeys)
}

// Sync synchronizes the wallet with the chain.
func (w *Wallet) Sync(ctx context.Context, name, encKey string) (json.RawMessage, error) {
	return w.syncCall(ctx, "sync", name, encKey)
}

// SyncAll resynchronizes the wallet from genesis.
func (w *Wallet) SyncAll(ctx context.Context, name, encKey string) (json.RawMessage, error) {
	return w.syncCall(ctx, "sync_all", name, encKey)
}

// SyncUnlock unlocks the wallet for background synchronization.
func (w *Wallet) SyncUnlock(ctx context.Context, name, encKey string) (json.RawMessage, error) {
	return w.syncCall(ctx, "sync_unlockWallet", name, encKey)
}

// SyncStop stops background synchronization.
func (w *Wallet) SyncStop(ctx context.Context, name, encKey string) (json.RawMessage, error) {
	return w.syncCall(ctx, "sync_stop", name, encKey)
}

func (w *Wallet) syncCall(ctx context.Context, method, name, encKey string) (json.RawMessage, error) {
	key, err := w.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return w.svc.Call(ctx, method, authParam(w.creds.WalletName(name), key))
}
