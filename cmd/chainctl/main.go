// chainctl is a command-line client for a chain node's wallet and
// consensus JSON-RPC endpoints.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chainward/chainctl/internal/chainclient"
	"github.com/chainward/chainctl/internal/config"
	"github.com/chainward/chainctl/internal/logz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logz.FromDebugLevel(cfg.HTTPDebugLevel)
	creds := chainclient.NewCredentials(cfg, chainclient.TerminalPrompter{})
	svc := chainclient.New(cfg, log)
	rpc := chainclient.NewRPC(svc, creds)

	rootCmd := &cobra.Command{
		Use:           "chainctl",
		Short:         "Client for the chain's wallet and consensus RPC endpoints",
		Long:          "Command-line client exposing wallet, staking, multisig and blockchain-query operations over the node's JSON-RPC interfaces",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		addressCommand(rpc),
		walletCommand(rpc),
		stakingCommand(rpc),
		multisigCommand(rpc),
		chainCommand(rpc),
		rawTxCommand(rpc),
		scenarioCommand(cfg, log),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printResult pretty-prints a raw JSON-RPC result with indentation.
func printResult(raw json.RawMessage) {
	if len(raw) == 0 {
		fmt.Println("null")
		return
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(buf.String())
}

// parseJSONFlag decodes a JSON-valued flag, defaulting to an empty array.
func parseJSONFlag(name, value string) (interface{}, error) {
	if value == "" {
		return []interface{}{}, nil
	}
	var parsed interface{}
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		return nil, fmt.Errorf("--%s must be valid JSON: %w", name, err)
	}
	return parsed, nil
}

func rawTxCommand(rpc *chainclient.RPC) *cobra.Command {
	var inputs string
	var outputs string
	var viewKeys string

	cmd := &cobra.Command{
		Use:   "raw-tx",
		Short: "Build an unsigned raw transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseJSONFlag("inputs", inputs)
			if err != nil {
				return err
			}
			out, err := parseJSONFlag("outputs", outputs)
			if err != nil {
				return err
			}
			keys, err := parseJSONFlag("view-keys", viewKeys)
			if err != nil {
				return err
			}
			raw, err := rpc.RawTx(cmd.Context(), in, out, keys)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputs, "inputs", "", "Transaction inputs (JSON array)")
	cmd.Flags().StringVar(&outputs, "outputs", "", "Transaction outputs (JSON array)")
	cmd.Flags().StringVar(&viewKeys, "view-keys", "", "View keys (JSON array)")

	return cmd
}
