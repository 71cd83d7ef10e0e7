package main

import (
	"github.com/spf13/cobra"

	"github.com/chainward/chainctl/internal/chainclient"
)

func addressCommand(rpc *chainclient.RPC) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Wallet address operations",
	}

	cmd.AddCommand(
		addressListCommand(rpc),
		addressCreateCommand(rpc),
		addressCreateWatchCommand(rpc),
	)

	return cmd
}

func addressListCommand(rpc *chainclient.RPC) *cobra.Command {
	var name, addrType, encKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the wallet's addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Address.List(cmd.Context(), name, addrType, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&addrType, "type", "staking", "Type of address [staking|transfer]")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")

	return cmd
}

func addressCreateCommand(rpc *chainclient.RPC) *cobra.Command {
	var name, addrType, encKey string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new address",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Address.Create(cmd.Context(), name, addrType, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&addrType, "type", "staking", "Type of address [staking|transfer]")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")

	return cmd
}

func addressCreateWatchCommand(rpc *chainclient.RPC) *cobra.Command {
	var publicKey, name, addrType, encKey string

	cmd := &cobra.Command{
		Use:   "create-watch",
		Short: "Create a watch address for a watch-only wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Address.CreateWatch(cmd.Context(), publicKey, name, addrType, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&publicKey, "public-key", "", "Public key of the address (required)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&addrType, "type", "staking", "Type of address [staking|transfer]")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")
	cmd.MarkFlagRequired("public-key")

	return cmd
}
