package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainward/chainctl/internal/chainclient"
)

func chainCommand(rpc *chainclient.RPC) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Blockchain queries against the consensus RPC endpoint",
	}

	cmd.AddCommand(
		chainStatusCommand(rpc),
		chainInfoCommand(rpc),
		chainGenesisCommand(rpc),
		chainUnconfirmedTxsCommand(rpc),
		chainLatestHeightCommand(rpc),
		chainValidatorsCommand(rpc),
		chainBlockCommand(rpc),
		chainBlockResultsCommand(rpc),
		chainBlockchainCommand(rpc),
		chainCommitCommand(rpc),
		chainQueryCommand(rpc),
		chainBroadcastCommand(rpc, "broadcast-tx-commit", "Broadcast a transaction and wait for commit",
			(*chainclient.Blockchain).BroadcastTxCommit),
		chainBroadcastCommand(rpc, "broadcast-tx-sync", "Broadcast a transaction and wait for the mempool check",
			(*chainclient.Blockchain).BroadcastTxSync),
		chainBroadcastCommand(rpc, "broadcast-tx-async", "Broadcast a transaction without waiting",
			(*chainclient.Blockchain).BroadcastTxAsync),
		chainTxCommand(rpc),
	)

	return cmd
}

// chainSimpleCommand covers the zero-argument chain queries.
func chainSimpleCommand(use, short string,
	run func(ctx context.Context) (json.RawMessage, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := run(cmd.Context())
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}
}

func chainStatusCommand(rpc *chainclient.RPC) *cobra.Command {
	return chainSimpleCommand("status", "Get node status", rpc.Chain.Status)
}

func chainInfoCommand(rpc *chainclient.RPC) *cobra.Command {
	return chainSimpleCommand("info", "Get node network information", rpc.Chain.Info)
}

func chainGenesisCommand(rpc *chainclient.RPC) *cobra.Command {
	return chainSimpleCommand("genesis", "Get the genesis document", rpc.Chain.Genesis)
}

func chainUnconfirmedTxsCommand(rpc *chainclient.RPC) *cobra.Command {
	return chainSimpleCommand("unconfirmed-txs", "List mempool transactions", rpc.Chain.UnconfirmedTxs)
}

func chainLatestHeightCommand(rpc *chainclient.RPC) *cobra.Command {
	return &cobra.Command{
		Use:   "latest-height",
		Short: "Get the current chain height",
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := rpc.Chain.LatestHeight(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(height)
			return nil
		},
	}
}

func chainValidatorsCommand(rpc *chainclient.RPC) *cobra.Command {
	var height string

	cmd := &cobra.Command{
		Use:   "validators",
		Short: "Get the validator set",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Chain.Validators(cmd.Context(), height)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&height, "height", "", "Block height (defaults to current)")

	return cmd
}

// chainHeightCommand covers the queries taking one height that accepts
// the latest sentinel.
func chainHeightCommand(use, short string,
	run func(ctx context.Context, height string) (json.RawMessage, error)) *cobra.Command {
	var height string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := run(cmd.Context(), height)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&height, "height", chainclient.HeightLatest, "Block height or \"latest\"")

	return cmd
}

func chainBlockCommand(rpc *chainclient.RPC) *cobra.Command {
	return chainHeightCommand("block", "Get a block", rpc.Chain.Block)
}

func chainBlockResultsCommand(rpc *chainclient.RPC) *cobra.Command {
	return chainHeightCommand("block-results", "Get block execution results", rpc.Chain.BlockResults)
}

func chainCommitCommand(rpc *chainclient.RPC) *cobra.Command {
	return chainHeightCommand("commit", "Get a block commit", rpc.Chain.Commit)
}

func chainBlockchainCommand(rpc *chainclient.RPC) *cobra.Command {
	var minHeight, maxHeight string

	cmd := &cobra.Command{
		Use:   "blockchain",
		Short: "Get block metadata over a height range",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Chain.Chain(cmd.Context(), minHeight, maxHeight)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&minHeight, "min-height", "", "Lowest height to include (required)")
	cmd.Flags().StringVar(&maxHeight, "max-height", chainclient.HeightLatest, "Highest height or \"latest\"")
	cmd.MarkFlagRequired("min-height")

	return cmd
}

func chainQueryCommand(rpc *chainclient.RPC) *cobra.Command {
	var path, data, height string
	var proof bool

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Perform an abci_query",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Chain.Query(cmd.Context(), path, data, height, proof)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Query path (required)")
	cmd.Flags().StringVar(&data, "data", "", "Query data, address-like values normalized")
	cmd.Flags().StringVar(&height, "height", "", "Block height (defaults to current)")
	cmd.Flags().BoolVar(&proof, "proof", false, "Include proofs")
	cmd.MarkFlagRequired("path")

	return cmd
}

func chainBroadcastCommand(rpc *chainclient.RPC, use, short string,
	run func(*chainclient.Blockchain, context.Context, string) (json.RawMessage, error)) *cobra.Command {
	var tx string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := run(rpc.Chain, cmd.Context(), tx)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&tx, "tx", "", "Encoded transaction (required)")
	cmd.MarkFlagRequired("tx")

	return cmd
}

func chainTxCommand(rpc *chainclient.RPC) *cobra.Command {
	var txid string

	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Look up a committed transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Chain.Tx(cmd.Context(), txid)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&txid, "txid", "", "Transaction id (required)")
	cmd.MarkFlagRequired("txid")

	return cmd
}
