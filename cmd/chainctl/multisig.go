package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/chainward/chainctl/internal/chainclient"
)

func multisigCommand(rpc *chainclient.RPC) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multisig",
		Short: "Multi-party signing session operations",
	}

	cmd.AddCommand(
		multisigCreateAddressCommand(rpc),
		multisigNewSessionCommand(rpc),
		multisigNonceCommitmentCommand(rpc),
		multisigAddNonceCommitmentCommand(rpc),
		multisigNonceCommand(rpc),
		multisigAddNonceCommand(rpc),
		multisigPartialSignCommand(rpc),
		multisigAddPartialSignatureCommand(rpc),
		multisigSignatureCommand(rpc),
		multisigBroadcastCommand(rpc),
	)

	return cmd
}

func multisigCreateAddressCommand(rpc *chainclient.RPC) *cobra.Command {
	var publicKeys []string
	var selfPublicKey, name, encKey string
	var requiredSignatures int

	cmd := &cobra.Command{
		Use:   "create-address",
		Short: "Create an m-of-n multisig transfer address",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.MultiSig.CreateAddress(cmd.Context(),
				publicKeys, selfPublicKey, requiredSignatures, name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&publicKeys, "public-key", []string{}, "Co-signer public key (repeatable, required)")
	cmd.Flags().StringVar(&selfPublicKey, "self-public-key", "", "This wallet's public key (required)")
	cmd.Flags().IntVar(&requiredSignatures, "required-signatures", 0, "Number of required signatures (required)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")
	cmd.MarkFlagRequired("public-key")
	cmd.MarkFlagRequired("self-public-key")
	cmd.MarkFlagRequired("required-signatures")

	return cmd
}

func multisigNewSessionCommand(rpc *chainclient.RPC) *cobra.Command {
	var signerPublicKeys []string
	var message, selfPublicKey, name, encKey string

	cmd := &cobra.Command{
		Use:   "new-session",
		Short: "Open a signing session and return its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.MultiSig.NewSession(cmd.Context(),
				message, signerPublicKeys, selfPublicKey, name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "Message to sign (required)")
	cmd.Flags().StringArrayVar(&signerPublicKeys, "signer-public-key", []string{}, "Signer public key (repeatable, required)")
	cmd.Flags().StringVar(&selfPublicKey, "self-public-key", "", "This wallet's public key (required)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")
	cmd.MarkFlagRequired("message")
	cmd.MarkFlagRequired("signer-public-key")
	cmd.MarkFlagRequired("self-public-key")

	return cmd
}

// multisigSessionCommand covers the session steps that take only the
// session id and a passphrase.
func multisigSessionCommand(rpc *chainclient.RPC, use, short string,
	run func(*chainclient.RPC) sessionStepFunc) *cobra.Command {
	var sessionID, passphrase string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := run(rpc)(cmd.Context(), sessionID, passphrase)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session-id", "", "Signing session id (required)")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Wallet passphrase")
	cmd.MarkFlagRequired("session-id")

	return cmd
}

type sessionStepFunc = func(ctx context.Context, sessionID, passphrase string) (json.RawMessage, error)

func multisigNonceCommitmentCommand(rpc *chainclient.RPC) *cobra.Command {
	return multisigSessionCommand(rpc, "nonce-commitment", "Get this signer's nonce commitment",
		func(r *chainclient.RPC) sessionStepFunc { return r.MultiSig.NonceCommitment })
}

func multisigNonceCommand(rpc *chainclient.RPC) *cobra.Command {
	return multisigSessionCommand(rpc, "nonce", "Get this signer's nonce",
		func(r *chainclient.RPC) sessionStepFunc { return r.MultiSig.Nonce })
}

func multisigPartialSignCommand(rpc *chainclient.RPC) *cobra.Command {
	return multisigSessionCommand(rpc, "partial-sign", "Produce this signer's partial signature",
		func(r *chainclient.RPC) sessionStepFunc { return r.MultiSig.PartialSign })
}

func multisigSignatureCommand(rpc *chainclient.RPC) *cobra.Command {
	return multisigSessionCommand(rpc, "signature", "Assemble the final signature",
		func(r *chainclient.RPC) sessionStepFunc { return r.MultiSig.Signature })
}

func multisigAddNonceCommitmentCommand(rpc *chainclient.RPC) *cobra.Command {
	var sessionID, passphrase, nonceCommitment, publicKey string

	cmd := &cobra.Command{
		Use:   "add-nonce-commitment",
		Short: "Record another signer's nonce commitment",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.MultiSig.AddNonceCommitment(cmd.Context(),
				sessionID, passphrase, nonceCommitment, publicKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session-id", "", "Signing session id (required)")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Wallet passphrase")
	cmd.Flags().StringVar(&nonceCommitment, "nonce-commitment", "", "Signer's nonce commitment (required)")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "Signer's public key (required)")
	cmd.MarkFlagRequired("session-id")
	cmd.MarkFlagRequired("nonce-commitment")
	cmd.MarkFlagRequired("public-key")

	return cmd
}

func multisigAddNonceCommand(rpc *chainclient.RPC) *cobra.Command {
	var sessionID, passphrase, nonce, publicKey string

	cmd := &cobra.Command{
		Use:   "add-nonce",
		Short: "Record another signer's nonce",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.MultiSig.AddNonce(cmd.Context(),
				sessionID, passphrase, nonce, publicKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session-id", "", "Signing session id (required)")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Wallet passphrase")
	cmd.Flags().StringVar(&nonce, "nonce", "", "Signer's nonce (required)")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "Signer's public key (required)")
	cmd.MarkFlagRequired("session-id")
	cmd.MarkFlagRequired("nonce")
	cmd.MarkFlagRequired("public-key")

	return cmd
}

func multisigAddPartialSignatureCommand(rpc *chainclient.RPC) *cobra.Command {
	var sessionID, passphrase, partialSignature, publicKey string

	cmd := &cobra.Command{
		Use:   "add-partial-signature",
		Short: "Record another signer's partial signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.MultiSig.AddPartialSignature(cmd.Context(),
				sessionID, passphrase, partialSignature, publicKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session-id", "", "Signing session id (required)")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Wallet passphrase")
	cmd.Flags().StringVar(&partialSignature, "partial-signature", "", "Signer's partial signature (required)")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "Signer's public key (required)")
	cmd.MarkFlagRequired("session-id")
	cmd.MarkFlagRequired("partial-signature")
	cmd.MarkFlagRequired("public-key")

	return cmd
}

func multisigBroadcastCommand(rpc *chainclient.RPC) *cobra.Command {
	var sessionID, unsignedTransaction, name, encKey string

	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Broadcast an unsigned transaction with the session signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rpc.MultiSig.BroadcastWithSignature(cmd.Context(),
				sessionID, unsignedTransaction, name, encKey)
			if err != nil {
				return err
			}
			printResult(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session-id", "", "Signing session id (required)")
	cmd.Flags().StringVar(&unsignedTransaction, "unsigned-transaction", "", "Unsigned transaction payload (required)")
	cmd.Flags().StringVar(&name, "name", "", "Name of the wallet")
	cmd.Flags().StringVar(&encKey, "enckey", "", "Wallet encryption key")
	cmd.MarkFlagRequired("session-id")
	cmd.MarkFlagRequired("unsigned-transaction")

	return cmd
}
