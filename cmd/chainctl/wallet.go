package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/chainward/chainctl/internal/chainclient"
)

func walletCommand(rpc *chainclient.RPC) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet lifecycle and query operations",
	}

	cmd.AddCommand(
		walletEncKeyCommand(rpc),
		walletBalanceCommand(rpc),
		walletListCommand(rpc),
		walletUTxOCommand(rpc),
		walletCreateCommand(rpc),
		walletRestoreCommand(rpc),
		walletRestoreBasicCommand(rpc),
		walletDeleteCommand(rpc),
		walletViewKeyCommand(rpc),
		walletListPubKeyCommand(rpc),
		walletTransactionsCommand(rpc),
		walletSendCommand(rpc),
		walletSyncCommand(rpc),
		walletSyncAllCommand(rpc),
		walletSyncUnlockCommand(rpc),
		walletSyncStopCommand(rpc),
	)

	return cmd
}

func walletEncKeyCommand(rpc *chainclient.RPC) *cobra.Command {
	var name, passphrase string

	cmd := &cobra.Command{
		Use:   "enckey",
		Short: "Get the wallet's encryption key",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Wallet.EncKey(cmd.Context(), name, passphrase)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Wallet passphrase")

	return cmd
}

func walletBalanceCommand(rpc *chainclient.RPC) *cobra.Command {
	var name, encKey string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get the wallet balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Wallet.Balance(cmd.Context(), name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")

	return cmd
}

func walletListCommand(rpc *chainclient.RPC) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all wallets",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Wallet.List(cmd.Context())
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}
}

func walletUTxOCommand(rpc *chainclient.RPC) *cobra.Command {
	var name, encKey string

	cmd := &cobra.Command{
		Use:   "utxo",
		Short: "List the wallet's unspent outputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Wallet.UTxO(cmd.Context(), name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")

	return cmd
}

func walletCreateCommand(rpc *chainclient.RPC) *cobra.Command {
	var name, walletType, passphrase string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Wallet.Create(cmd.Context(), name, walletType, passphrase)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&walletType, "type", "Basic", "Type of the wallet [Basic|HD]")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Wallet passphrase")

	return cmd
}

func walletRestoreCommand(rpc *chainclient.RPC) *cobra.Command {
	var mnemonics, name, passphrase string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore an HD wallet from mnemonic words",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Wallet.Restore(cmd.Context(), mnemonics, name, passphrase)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&mnemonics, "mnemonics", "", "Mnemonic words (required)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Wallet passphrase")
	cmd.MarkFlagRequired("mnemonics")

	return cmd
}

func walletRestoreBasicCommand(rpc *chainclient.RPC) *cobra.Command {
	var privateViewKey, name, passphrase string

	cmd := &cobra.Command{
		Use:   "restore-basic",
		Short: "Restore a basic wallet from a private view key",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Wallet.RestoreBasic(cmd.Context(), privateViewKey, name, passphrase)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&privateViewKey, "private-view-key", "", "Hex encoded private view key (required)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Wallet passphrase")
	cmd.MarkFlagRequired("private-view-key")

	return cmd
}

func walletDeleteCommand(rpc *chainclient.RPC) *cobra.Command {
	var name, passphrase string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Wallet.Delete(cmd.Context(), name, passphrase)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Wallet passphrase")

	return cmd
}

func walletViewKeyCommand(rpc *chainclient.RPC) *cobra.Command {
	var name, encKey string
	var private bool

	cmd := &cobra.Command{
		Use:   "view-key",
		Short: "Get the wallet view key",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Wallet.ViewKey(cmd.Context(), name, private, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().BoolVar(&private, "private", false, "Return the private view key")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")

	return cmd
}

func walletListPubKeyCommand(rpc *chainclient.RPC) *cobra.Command {
	var name, encKey string

	cmd := &cobra.Command{
		Use:   "list-pubkey",
		Short: "List the wallet's public keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Wallet.ListPubKey(cmd.Context(), name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")

	return cmd
}

func walletTransactionsCommand(rpc *chainclient.RPC) *cobra.Command {
	var name, encKey string
	var offset, limit int
	var reversed bool

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Page through the wallet's transaction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Wallet.Transactions(cmd.Context(), name, offset, limit, reversed, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().IntVar(&offset, "offset", 0, "Pagination offset")
	cmd.Flags().IntVar(&limit, "limit", 100, "Pagination limit")
	cmd.Flags().BoolVar(&reversed, "reversed", false, "Reverse the ordering")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")

	return cmd
}

func walletSendCommand(rpc *chainclient.RPC) *cobra.Command {
	var toAddress, amount, name, encKey string
	var viewKeys []string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send coins to a transfer address",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Wallet.Send(cmd.Context(), toAddress, amount, name, viewKeys, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&toAddress, "to-address", "", "Destination transfer address (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in base units (required)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringArrayVar(&viewKeys, "view-key", []string{}, "View key to share the transaction with (repeatable)")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")
	cmd.MarkFlagRequired("to-address")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func walletSyncCommand(rpc *chainclient.RPC) *cobra.Command {
	return walletSyncVariant(rpc, "sync", "Synchronize the wallet with the chain",
		(*chainclient.Wallet).Sync)
}

func walletSyncAllCommand(rpc *chainclient.RPC) *cobra.Command {
	return walletSyncVariant(rpc, "sync-all", "Resynchronize the wallet from genesis",
		(*chainclient.Wallet).SyncAll)
}

func walletSyncUnlockCommand(rpc *chainclient.RPC) *cobra.Command {
	return walletSyncVariant(rpc, "sync-unlock", "Unlock the wallet for background sync",
		(*chainclient.Wallet).SyncUnlock)
}

func walletSyncStopCommand(rpc *chainclient.RPC) *cobra.Command {
	return walletSyncVariant(rpc, "sync-stop", "Stop background synchronization",
		(*chainclient.Wallet).SyncStop)
}

func walletSyncVariant(rpc *chainclient.RPC, use, short string,
	run func(*chainclient.Wallet, context.Context, string, string) (json.RawMessage, error)) *cobra.Command {
	var name, encKey string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := run(rpc.Wallet, cmd.Context(), name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")

	return cmd
}
