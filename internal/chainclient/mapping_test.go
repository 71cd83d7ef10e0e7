package chainclient

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMethodMapping pins every facade operation to its remote method name
// and positional parameter shape. The wallet endpoint carries the
// [name, credential] pair first; the chain endpoint takes no credentials.
func TestMethodMapping(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		call     func(rpc *RPC) (json.RawMessage, error)
		endpoint string
		method   string
		params   []interface{}
	}{
		{
			name:     "wallet enckey",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Wallet.EncKey(ctx, "", "") },
			endpoint: "wallet",
			method:   "wallet_getEncKey",
			params:   []interface{}{authParam("Default", "pp")},
		},
		{
			name:     "wallet balance",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Wallet.Balance(ctx, "", "") },
			endpoint: "wallet",
			method:   "wallet_balance",
			params:   []interface{}{authParam("Default", "ek")},
		},
		{
			name:     "wallet list",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Wallet.List(ctx) },
			endpoint: "wallet",
			method:   "wallet_list",
		},
		{
			name:     "wallet utxo",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Wallet.UTxO(ctx, "", "") },
			endpoint: "wallet",
			method:   "wallet_listUTxO",
			params:   []interface{}{authParam("Default", "ek")},
		},
		{
			name:     "wallet create",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Wallet.Create(ctx, "mine", WalletTypeHD, "secret") },
			endpoint: "wallet",
			method:   "wallet_create",
			params:   []interface{}{authParam("mine", "secret"), "HD"},
		},
		{
			name: "wallet restore",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Wallet.Restore(ctx, "abandon ability able", "mine", "")
			},
			endpoint: "wallet",
			method:   "wallet_restore",
			params:   []interface{}{authParam("mine", "pp"), "abandon ability able"},
		},
		{
			name: "wallet restore basic",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Wallet.RestoreBasic(ctx, "deadbeef", "", "")
			},
			endpoint: "wallet",
			method:   "wallet_restoreBasic",
			params:   []interface{}{authParam("Default", "pp"), "deadbeef"},
		},
		{
			name:     "wallet delete",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Wallet.Delete(ctx, "", "") },
			endpoint: "wallet",
			method:   "wallet_delete",
			params:   []interface{}{authParam("Default", "pp")},
		},
		{
			name:     "wallet view key private",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Wallet.ViewKey(ctx, "", true, "") },
			endpoint: "wallet",
			method:   "wallet_getViewKey",
			params:   []interface{}{authParam("Default", "ek"), true},
		},
		{
			name:     "wallet list public keys",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Wallet.ListPubKey(ctx, "", "") },
			endpoint: "wallet",
			method:   "wallet_listPublicKeys",
			params:   []interface{}{authParam("Default", "ek")},
		},
		{
			name: "wallet transactions",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Wallet.Transactions(ctx, "", 20, 10, true, "")
			},
			endpoint: "wallet",
			method:   "wallet_transactions",
			params:   []interface{}{authParam("Default", "ek"), 20, 10, true},
		},
		{
			name: "wallet send",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Wallet.Send(ctx, "0xdst", "500", "", []string{"vk1"}, "")
			},
			endpoint: "wallet",
			method:   "wallet_sendToAddress",
			params:   []interface{}{authParam("Default", "ek"), "0xdst", "500", []string{"vk1"}},
		},
		{
			name: "wallet send nil view keys",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Wallet.Send(ctx, "0xdst", "500", "", nil, "")
			},
			endpoint: "wallet",
			method:   "wallet_sendToAddress",
			params:   []interface{}{authParam("Default", "ek"), "0xdst", "500", []string{}},
		},
		{
			name:     "wallet sync",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Wallet.Sync(ctx, "", "") },
			endpoint: "wallet",
			method:   "sync",
			params:   []interface{}{authParam("Default", "ek")},
		},
		{
			name:     "wallet sync all",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Wallet.SyncAll(ctx, "", "") },
			endpoint: "wallet",
			method:   "sync_all",
			params:   []interface{}{authParam("Default", "ek")},
		},
		{
			name:     "wallet sync unlock",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Wallet.SyncUnlock(ctx, "", "") },
			endpoint: "wallet",
			method:   "sync_unlockWallet",
			params:   []interface{}{authParam("Default", "ek")},
		},
		{
			name:     "wallet sync stop",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Wallet.SyncStop(ctx, "", "") },
			endpoint: "wallet",
			method:   "sync_stop",
			params:   []interface{}{authParam("Default", "ek")},
		},
		{
			name: "address list staking",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Address.List(ctx, "", AddressTypeStaking, "")
			},
			endpoint: "wallet",
			method:   "wallet_listStakingAddresses",
			params:   []interface{}{authParam("Default", "ek")},
		},
		{
			name: "address list transfer",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Address.List(ctx, "", AddressTypeTransfer, "")
			},
			endpoint: "wallet",
			method:   "wallet_listTransferAddresses",
			params:   []interface{}{authParam("Default", "ek")},
		},
		{
			name: "address create staking",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Address.Create(ctx, "", AddressTypeStaking, "")
			},
			endpoint: "wallet",
			method:   "wallet_createStakingAddress",
			params:   []interface{}{authParam("Default", "ek")},
		},
		{
			name: "address create transfer uppercase type",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Address.Create(ctx, "", "Transfer", "")
			},
			endpoint: "wallet",
			method:   "wallet_createTransferAddress",
			params:   []interface{}{authParam("Default", "ek")},
		},
		{
			name: "address create watch staking",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Address.CreateWatch(ctx, "pubkey1", "", AddressTypeStaking, "")
			},
			endpoint: "wallet",
			method:   "wallet_createWatchStakingAddress",
			params:   []interface{}{authParam("Default", "ek"), "pubkey1"},
		},
		{
			name: "address create watch transfer",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Address.CreateWatch(ctx, "pubkey1", "", AddressTypeTransfer, "")
			},
			endpoint: "wallet",
			method:   "wallet_createWatchTransferAddress",
			params:   []interface{}{authParam("Default", "ek"), "pubkey1"},
		},
		{
			name: "staking deposit normalizes address",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Staking.Deposit(ctx, "12345", []interface{}{}, "", "")
			},
			endpoint: "wallet",
			method:   "staking_depositStake",
			params:   []interface{}{authParam("Default", "ek"), "0x3039", []interface{}{}},
		},
		{
			name: "staking state",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Staking.State(ctx, "0xabc", "", "")
			},
			endpoint: "wallet",
			method:   "staking_state",
			params:   []interface{}{authParam("Default", "ek"), "0xabc"},
		},
		{
			name: "staking unbond",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Staking.Unbond(ctx, "0xabc", "100000000", "", "")
			},
			endpoint: "wallet",
			method:   "staking_unbondStake",
			params:   []interface{}{authParam("Default", "ek"), "0xabc", "100000000"},
		},
		{
			name: "staking withdraw all unbonded",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Staking.WithdrawAllUnbonded(ctx, "0xabc", "0xdst", nil, "", "")
			},
			endpoint: "wallet",
			method:   "staking_withdrawAllUnbondedStake",
			params:   []interface{}{authParam("Default", "ek"), "0xabc", "0xdst", []string{}},
		},
		{
			name: "staking unjail",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Staking.Unjail(ctx, "0xabc", "", "")
			},
			endpoint: "wallet",
			method:   "staking_unjail",
			params:   []interface{}{authParam("Default", "ek"), "0xabc"},
		},
		{
			name: "staking join",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Staking.Join(ctx, "node0", "consensus-key", "0xabc", "", "")
			},
			endpoint: "wallet",
			method:   "staking_validatorNodeJoin",
			params:   []interface{}{authParam("Default", "ek"), "node0", "consensus-key", "0xabc"},
		},
		{
			name: "multisig create address",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.MultiSig.CreateAddress(ctx, []string{"pk1", "pk2"}, "self", 2, "", "")
			},
			endpoint: "wallet",
			method:   "multiSig_createAddress",
			params:   []interface{}{authParam("Default", "ek"), []string{"pk1", "pk2"}, "self", 2},
		},
		{
			name: "multisig new session",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.MultiSig.NewSession(ctx, "msg", []string{"pk1"}, "self", "", "")
			},
			endpoint: "wallet",
			method:   "multiSig_newSession",
			params:   []interface{}{authParam("Default", "ek"), "msg", []string{"pk1"}, "self"},
		},
		{
			name: "multisig nonce commitment",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.MultiSig.NonceCommitment(ctx, "sess", "")
			},
			endpoint: "wallet",
			method:   "multiSig_nonceCommitment",
			params:   []interface{}{"sess", "pp"},
		},
		{
			name: "multisig add nonce commitment",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.MultiSig.AddNonceCommitment(ctx, "sess", "", "commitment", "pk1")
			},
			endpoint: "wallet",
			method:   "multiSig_addNonceCommitment",
			params:   []interface{}{"sess", "pp", "commitment", "pk1"},
		},
		{
			name: "multisig nonce",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.MultiSig.Nonce(ctx, "sess", "")
			},
			endpoint: "wallet",
			method:   "multiSig_nonce",
			params:   []interface{}{"sess", "pp"},
		},
		{
			name: "multisig add nonce",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.MultiSig.AddNonce(ctx, "sess", "", "nonce", "pk1")
			},
			endpoint: "wallet",
			method:   "multiSig_addNonce",
			params:   []interface{}{"sess", "pp", "nonce", "pk1"},
		},
		{
			name: "multisig partial sign",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.MultiSig.PartialSign(ctx, "sess", "")
			},
			endpoint: "wallet",
			method:   "multiSig_partialSign",
			params:   []interface{}{"sess", "pp"},
		},
		{
			name: "multisig add partial signature",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.MultiSig.AddPartialSignature(ctx, "sess", "", "sig", "pk1")
			},
			endpoint: "wallet",
			method:   "multiSig_addPartialSignature",
			params:   []interface{}{"sess", "pp", "sig", "pk1"},
		},
		{
			name: "multisig signature",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.MultiSig.Signature(ctx, "sess", "")
			},
			endpoint: "wallet",
			method:   "multiSig_signature",
			params:   []interface{}{"sess", "pp"},
		},
		{
			name: "multisig broadcast with signature",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.MultiSig.BroadcastWithSignature(ctx, "sess", "unsigned-tx", "", "")
			},
			endpoint: "wallet",
			method:   "multiSig_broadcastWithSignature",
			params:   []interface{}{authParam("Default", "ek"), "sess", "unsigned-tx"},
		},
		{
			name: "raw transaction",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.RawTx(ctx, []interface{}{"in"}, []interface{}{"out"}, []interface{}{})
			},
			endpoint: "wallet",
			method:   "transaction_createRaw",
			params:   []interface{}{[]interface{}{"in"}, []interface{}{"out"}, []interface{}{}},
		},
		{
			name:     "chain status",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Chain.Status(ctx) },
			endpoint: "chain",
			method:   "status",
		},
		{
			name:     "chain info",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Chain.Info(ctx) },
			endpoint: "chain",
			method:   "info",
		},
		{
			name:     "chain genesis",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Chain.Genesis(ctx) },
			endpoint: "chain",
			method:   "genesis",
		},
		{
			name:     "chain unconfirmed txs",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Chain.UnconfirmedTxs(ctx) },
			endpoint: "chain",
			method:   "unconfirmed_txs",
		},
		{
			name:     "chain validators current height",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Chain.Validators(ctx, "") },
			endpoint: "chain",
			method:   "validators",
			params:   []interface{}{nil},
		},
		{
			name:     "chain validators explicit height",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Chain.Validators(ctx, "7") },
			endpoint: "chain",
			method:   "validators",
			params:   []interface{}{"7"},
		},
		{
			name:     "chain block explicit height",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Chain.Block(ctx, "7") },
			endpoint: "chain",
			method:   "block",
			params:   []interface{}{"7"},
		},
		{
			name:     "chain commit explicit height",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Chain.Commit(ctx, "7") },
			endpoint: "chain",
			method:   "commit",
			params:   []interface{}{"7"},
		},
		{
			name: "chain abci query",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Chain.Query(ctx, "account", "12345", "7", true)
			},
			endpoint: "chain",
			method:   "abci_query",
			params:   []interface{}{"account", "0x3039", "7", true},
		},
		{
			name: "chain abci query empty data and height",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Chain.Query(ctx, "account", "", "", false)
			},
			endpoint: "chain",
			method:   "abci_query",
			params:   []interface{}{"account", nil, nil, false},
		},
		{
			name:     "chain broadcast tx commit",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Chain.BroadcastTxCommit(ctx, "dGVzdA==") },
			endpoint: "chain",
			method:   "broadcast_tx_commit",
			params:   []interface{}{"dGVzdA=="},
		},
		{
			name:     "chain broadcast tx sync",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Chain.BroadcastTxSync(ctx, "dGVzdA==") },
			endpoint: "chain",
			method:   "broadcast_tx_sync",
			params:   []interface{}{"dGVzdA=="},
		},
		{
			name:     "chain broadcast tx async",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Chain.BroadcastTxAsync(ctx, "dGVzdA==") },
			endpoint: "chain",
			method:   "broadcast_tx_async",
			params:   []interface{}{"dGVzdA=="},
		},
		{
			name:     "chain tx lookup",
			call:     func(rpc *RPC) (json.RawMessage, error) { return rpc.Chain.Tx(ctx, "0xtxid") },
			endpoint: "chain",
			method:   "tx",
			params:   []interface{}{"0xtxid"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rpc, wallet, chain := newTestRPC()

			_, err := tc.call(rpc)
			require.NoError(t, err)

			hit, other := wallet, chain
			if tc.endpoint == "chain" {
				hit, other = chain, wallet
			}
			require.Equal(t, 1, hit.calls, "endpoint %s", tc.endpoint)
			require.Equal(t, 0, other.calls, "wrong endpoint hit")
			require.Equal(t, tc.method, hit.lastMethod)
			require.Equal(t, tc.params, hit.lastParams)
		})
	}
}

func TestInvalidArguments_NoNetworkCall(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		call func(rpc *RPC) (json.RawMessage, error)
	}{
		{
			name: "unknown wallet type",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Wallet.Create(ctx, "mine", "Paper", "secret")
			},
		},
		{
			name: "unknown address type",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Address.List(ctx, "", "multisig", "")
			},
		},
		{
			name: "non-numeric validators height",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Chain.Validators(ctx, "abc")
			},
		},
		{
			name: "negative block height",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Chain.Block(ctx, "-1")
			},
		},
		{
			name: "latest not accepted for range start",
			call: func(rpc *RPC) (json.RawMessage, error) {
				return rpc.Chain.Chain(ctx, HeightLatest, HeightLatest)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rpc, wallet, chain := newTestRPC()

			_, err := tc.call(rpc)
			require.ErrorIs(t, err, ErrInvalidArgument)
			require.Equal(t, 0, wallet.calls)
			require.Equal(t, 0, chain.calls)
		})
	}
}
