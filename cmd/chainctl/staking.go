package main

import (
	"github.com/spf13/cobra"

	"github.com/chainward/chainctl/internal/chainclient"
)

func stakingCommand(rpc *chainclient.RPC) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staking",
		Short: "Stake-bonding and validator operations",
	}

	cmd.AddCommand(
		stakingDepositCommand(rpc),
		stakingStateCommand(rpc),
		stakingUnbondCommand(rpc),
		stakingWithdrawCommand(rpc),
		stakingUnjailCommand(rpc),
		stakingJoinCommand(rpc),
	)

	return cmd
}

func stakingDepositCommand(rpc *chainclient.RPC) *cobra.Command {
	var toAddress, inputs, name, encKey string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit UTxO inputs to a staking address",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseJSONFlag("inputs", inputs)
			if err != nil {
				return err
			}
			raw, err := rpc.Staking.Deposit(cmd.Context(), toAddress, in, name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&toAddress, "to-address", "", "Staking address to bond to (required)")
	cmd.Flags().StringVar(&inputs, "inputs", "", "Transaction inputs (JSON array)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")
	cmd.MarkFlagRequired("to-address")

	return cmd
}

func stakingStateCommand(rpc *chainclient.RPC) *cobra.Command {
	var address, name, encKey string

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Query the on-chain state of a staking address",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Staking.State(cmd.Context(), address, name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Staking address (required)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")
	cmd.MarkFlagRequired("address")

	return cmd
}

func stakingUnbondCommand(rpc *chainclient.RPC) *cobra.Command {
	var address, amount, name, encKey string

	cmd := &cobra.Command{
		Use:   "unbond",
		Short: "Unbond stake from a staking address",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Staking.Unbond(cmd.Context(), address, amount, name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Staking address (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in base units (required)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")
	cmd.MarkFlagRequired("address")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func stakingWithdrawCommand(rpc *chainclient.RPC) *cobra.Command {
	var fromAddress, toAddress, name, encKey string
	var viewKeys []string

	cmd := &cobra.Command{
		Use:   "withdraw-all-unbonded",
		Short: "Withdraw all unbonded stake to a transfer address",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Staking.WithdrawAllUnbonded(cmd.Context(),
				fromAddress, toAddress, viewKeys, name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromAddress, "from-address", "", "Staking address to withdraw from (required)")
	cmd.Flags().StringVar(&toAddress, "to-address", "", "Destination transfer address (required)")
	cmd.Flags().StringArrayVar(&viewKeys, "view-key", []string{}, "View key to share the transaction with (repeatable)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")
	cmd.MarkFlagRequired("from-address")
	cmd.MarkFlagRequired("to-address")

	return cmd
}

func stakingUnjailCommand(rpc *chainclient.RPC) *cobra.Command {
	var address, name, encKey string

	cmd := &cobra.Command{
		Use:   "unjail",
		Short: "Unjail a jailed validator",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Staking.Unjail(cmd.Context(), address, name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Staking address (required)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")
	cmd.MarkFlagRequired("address")

	return cmd
}

func stakingJoinCommand(rpc *chainclient.RPC) *cobra.Command {
	var nodeName, nodePubKey, nodeStakingAddress, name, encKey string

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join the validator set as a council node",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.Staking.Join(cmd.Context(),
				nodeName, nodePubKey, nodeStakingAddress, name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&nodeName, "node-name", "", "Council node name (required)")
	cmd.Flags().StringVar(&nodePubKey, "node-pubkey", "", "Council node consensus public key (required)")
	cmd.Flags().StringVar(&nodeStakingAddress, "node-staking-address", "", "Bonded staking address (required)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")
	cmd.MarkFlagRequired("node-name")
	cmd.MarkFlagRequired("node-pubkey")
	cmd.MarkFlagRequired("node-staking-address")

	return cmd
}
