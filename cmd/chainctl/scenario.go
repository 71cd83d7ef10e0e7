package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chainward/chainctl/internal/chainclient"
	"github.com/chainward/chainctl/internal/config"
	"github.com/chainward/chainctl/internal/scenario"
	"github.com/chainward/chainctl/internal/supervisor"
)

// Base port of the jail cluster fixture. BASE_PORT overrides it when the
// flag is left at its default.
const jailClusterBasePort = 25560

func scenarioCommand(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "End-to-end cluster scenarios",
	}

	cmd.AddCommand(scenarioJailCommand(cfg, log))

	return cmd
}

func scenarioJailCommand(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	var basePort int
	var socketPath string
	var strict bool

	cmd := &cobra.Command{
		Use:   "jail",
		Short: "Exercise validator jailing and unjailing on a three-node cluster",
		Long: "Stops one validator via the process supervisor, waits for the chain " +
			"to jail it for non-liveness, restarts it, waits out the jail period " +
			"and unjails it. Requires a running cluster matching the jail fixture.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("base-port") && os.Getenv("BASE_PORT") != "" {
				basePort = cfg.BasePort
			}

			scenarioCfg := *cfg
			scenarioCfg.BasePort = basePort
			creds := chainclient.NewCredentials(&scenarioCfg, chainclient.TerminalPrompter{})
			svc := chainclient.New(&scenarioCfg, log)
			rpc := chainclient.NewRPC(svc, creds)

			sup, err := supervisor.New(socketPath)
			if err != nil {
				return err
			}

			jailCfg := scenario.DefaultJailConfig(basePort)
			jailCfg.Strict = strict

			return scenario.NewJail(rpc, sup, jailCfg, log).Run(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&basePort, "base-port", jailClusterBasePort, "Cluster base port")
	cmd.Flags().StringVar(&socketPath, "supervisor-socket", "data/supervisor.sock", "Process supervisor control socket")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail if the validator set is not restored after unjail")

	return cmd
}
