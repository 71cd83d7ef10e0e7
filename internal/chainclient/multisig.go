package chainclient

import (
	"context"
	"encoding/json"
)

// MultiSig groups the multi-party signing session operations. The client
// holds no session state; each step is a stateless call keyed by the
// session id and a per-call passphrase.
type MultiSig struct {
	svc   *Client
	creds *Credentials
}

// CreateAddress creates an m-of-n multisig transfer address.
func (m *MultiSig) CreateAddress(ctx context.Context, publicKeys []string, selfPublicKey string, requiredSignatures int, name, encKey string) (json.RawMessage, error) {
	key, err := m.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return m.svc.Call(ctx, "multiSig_createAddress",
		authParam(m.creds.WalletName(name), key),
		publicKeys, selfPublicKey, requiredSignatures)
}

// NewSession opens a signing session for a message and returns its id.
func (m *MultiSig) NewSession(ctx context.Context, message string, signerPublicKeys []string, selfPublicKey, name, encKey string) (json.RawMessage, error) {
	key, err := m.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return m.svc.Call(ctx, "multiSig_newSession",
		authParam(m.creds.WalletName(name), key),
		message, signerPublicKeys, selfPublicKey)
}

// NonceCommitment returns this signer's nonce commitment.
func (m *MultiSig) NonceCommitment(ctx context.Context, sessionID, passphrase string) (json.RawMessage, error) {
	return m.sessionCall(ctx, "multiSig_nonceCommitment", sessionID, passphrase)
}

// AddNonceCommitment records another signer's nonce commitment.
func (m *MultiSig) AddNonceCommitment(ctx context.Context, sessionID, passphrase, nonceCommitment, publicKey string) (json.RawMessage, error) {
	return m.sessionCall(ctx, "multiSig_addNonceCommitment",
		sessionID, passphrase, nonceCommitment, publicKey)
}

// Nonce returns this signer's nonce.
func (m *MultiSig) Nonce(ctx context.Context, sessionID, passphrase string) (json.RawMessage, error) {
	return m.sessionCall(ctx, "multiSig_nonce", sessionID, passphrase)
}

// AddNonce records another signer's nonce.
func (m *MultiSig) AddNonce(ctx context.Context, sessionID, passphrase, nonce, publicKey string) (json.RawMessage, error) {
	return m.sessionCall(ctx, "multiSig_addNonce", sessionID, passphrase, nonce, publicKey)
}

// PartialSign produces this signer's partial signature.
func (m *MultiSig) PartialSign(ctx context.Context, sessionID, passphrase string) (json.RawMessage, error) {
	return m.sessionCall(ctx, "multiSig_partialSign", sessionID, passphrase)
}

// AddPartialSignature records another signer's partial signature.
func (m *MultiSig) AddPartialSignature(ctx context.Context, sessionID, passphrase, partialSignature, publicKey string) (json.RawMessage, error) {
	return m.sessionCall(ctx, "multiSig_addPartialSignature",
		sessionID, passphrase, partialSignature, publicKey)
}

// Signature assembles the final signature from the collected parts.
func (m *MultiSig) Signature(ctx context.Context, sessionID, passphrase string) (json.RawMessage, error) {
	return m.sessionCall(ctx, "multiSig_signature", sessionID, passphrase)
}

// BroadcastWithSignature broadcasts an unsigned transaction signed with the
// session's assembled signature.
func (m *MultiSig) BroadcastWithSignature(ctx context.Context, sessionID, unsignedTransaction, name, encKey string) (json.RawMessage, error) {
	key, err := m.creds.EncKey(encKey)
	if err != nil {
		return nil, err
	}
	return m.svc.Call(ctx, "multiSig_broadcastWithSignature",
		authParam(m.creds.WalletName(name), key), sessionID, unsignedTransaction)
}

// sessionCall resolves the per-call passphrase and forwards the session id
// plus remaining positional arguments.
func (m *MultiSig) sessionCall(ctx context.Context, method, sessionID, passphrase string, extra ...interface{}) (json.RawMessage, error) {
	phrase, err := m.creds.Passphrase(passphrase)
	if err != nil {
		return nil, err
	}
	params := append([]interface{}{sessionID, phrase}, extra...)
	return m.svc.Call(ctx, method, params...)
}
