// Package scenario drives end-to-end cluster behaviors through the
// aggregate RPC facade and the process supervisor, polling chain state
// until conditions are met.
package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chainward/chainctl/internal/chainclient"
)

// ProcessController is the out-of-band lifecycle channel to the process
// supervisor. There is no ordering guarantee between it and the chain RPC
// beyond the sequencing the scenario imposes.
type ProcessController interface {
	StartProcessGroup(name string) error
	StopProcessGroup(name string) error
}

// Ports-per-node spacing in the cluster's port layout.
const portsPerNode = 10

// blockMargin pads the missed-block threshold to absorb block-time jitter
// between stopping the node and the chain noticing the missed blocks.
const blockMargin = 3

// JailConfig fixes the scenario to one cluster layout. The values must
// match the external cluster configuration exactly; a mismatch is a
// test-authoring error, not a runtime fault.
type JailConfig struct {
	// TargetNode is the supervisor process group that gets jailed.
	TargetNode string
	// TargetNodeIndex positions the target node in the port layout.
	TargetNodeIndex int
	// TargetNodeMnemonic restores the target node's wallet on another node.
	TargetNodeMnemonic string
	// NodeCount is the full validator set size.
	NodeCount int
	// MissedBlockThreshold is the chain's non-live punishment threshold.
	MissedBlockThreshold int64
	// BasePort anchors the cluster port layout.
	BasePort int
	// WalletName is the restored wallet's local name.
	WalletName string
	// Strict turns the final validator-count check into a hard failure.
	// The underlying condition is known to be flaky, so it defaults off.
	Strict bool

	// Poll intervals, injectable so tests run against simulated chains.
	ValidatorPollInterval time.Duration
	BlockPollInterval     time.Duration
	BlockTimePollInterval time.Duration
	PortPollInterval      time.Duration
	// SettleDelay is the pause between unjailing and the final check.
	SettleDelay time.Duration
}

// DefaultJailConfig returns the fixture matching the jail cluster layout.
func DefaultJailConfig(basePort int) JailConfig {
	return JailConfig{
		TargetNode:           "node2",
		TargetNodeIndex:      2,
		TargetNodeMnemonic:   "symptom labor zone shrug chicken bargain hood define tornado mass inquiry rural step color guitar",
		NodeCount:            3,
		MissedBlockThreshold: 10,
		BasePort:             basePort,
		WalletName:           "target",

		ValidatorPollInterval: 2 * time.Second,
		BlockPollInterval:     2 * time.Second,
		BlockTimePollInterval: time.Second,
		PortPollInterval:      time.Second,
		SettleDelay:           time.Second,
	}
}

// TargetWalletAddr is the target node's wallet RPC address, used as the
// readiness probe after restarting it.
func (c JailConfig) TargetWalletAddr() string {
	port := c.BasePort + c.TargetNodeIndex*portsPerNode + 9
	return fmt.Sprintf("127.0.0.1:%d", port)
}

// Jail exercises validator jailing and unjailing: stop a node, wait for
// the chain to punish it, restart it, wait out the jail period, unjail.
type Jail struct {
	rpc *chainclient.RPC
	sup ProcessController
	cfg JailConfig
	log zerolog.Logger
}

// NewJail builds the scenario runner.
func NewJail(rpc *chainclient.RPC, sup ProcessController, cfg JailConfig, log zerolog.Logger) *Jail {
	return &Jail{rpc: rpc, sup: sup, cfg: cfg, log: log}
}

// Run executes the scenario. Any error is fatal; no cleanup of external
// process state is attempted.
func (j *Jail) Run(ctx context.Context) error {
	cfg := j.cfg
	chain := j.rpc.Chain

	j.log.Info().Int("count", cfg.NodeCount).Msg("waiting for validators online")
	if err := WaitForValidators(ctx, chain, cfg.NodeCount, cfg.ValidatorPollInterval, j.log); err != nil {
		return err
	}

	restored, err := j.rpc.Wallet.Restore(ctx, cfg.TargetNodeMnemonic, cfg.WalletName, "")
	if err != nil {
		return fmt.Errorf("restore target wallet: %w", err)
	}
	var encKey string
	if err := json.Unmarshal(restored, &encKey); err != nil {
		return fmt.Errorf("decode restore result: %w", err)
	}

	j.log.Info().Str("node", cfg.TargetNode).Msg("stopping target node")
	if err := j.sup.StopProcessGroup(cfg.TargetNode); err != nil {
		return err
	}

	baseline, err := chain.LatestHeight(ctx)
	if err != nil {
		return fmt.Errorf("capture baseline height: %w", err)
	}
	wanted := cfg.MissedBlockThreshold + blockMargin
	j.log.Info().Int64("blocks", wanted).Msg("waiting for missed blocks")
	if err := WaitForBlocks(ctx, chain, baseline, wanted, cfg.BlockPollInterval, j.log); err != nil {
		return err
	}

	set, err := chain.ValidatorSet(ctx)
	if err != nil {
		return err
	}
	if got, want := len(set.Validators), cfg.NodeCount-1; got != want {
		return fmt.Errorf("validator set has %d members after jailing, want %d", got, want)
	}

	addr, err := j.firstStakingAddress(ctx, encKey)
	if err != nil {
		return err
	}
	stateRaw, err := j.rpc.Staking.State(ctx, addr, cfg.WalletName, encKey)
	if err != nil {
		return fmt.Errorf("query staking state: %w", err)
	}
	state, err := chainclient.DecodeStakingState(stateRaw)
	if err != nil {
		return err
	}
	if state.Punishment == nil {
		return fmt.Errorf("staking address %s has no punishment record", addr)
	}
	if state.Punishment.Kind != "NonLive" {
		return fmt.Errorf("punishment kind is %q, want %q", state.Punishment.Kind, "NonLive")
	}
	j.log.Info().Str("slash_amount", state.Punishment.SlashAmount).
		Int64("jailed_until", state.Punishment.JailedUntil).Msg("punishment recorded")

	j.log.Info().Str("node", cfg.TargetNode).Msg("starting target node")
	if err := j.sup.StartProcessGroup(cfg.TargetNode); err != nil {
		return err
	}
	if err := WaitForPort(ctx, cfg.TargetWalletAddr(), cfg.PortPollInterval, j.log); err != nil {
		return err
	}
	j.log.Info().Str("node", cfg.TargetNode).Msg("target node started")

	jailedUntil := time.Unix(state.Punishment.JailedUntil, 0)
	j.log.Info().Time("jailed_until", jailedUntil).Msg("waiting for block time to pass jailed_until")
	if err := WaitForBlockTimePast(ctx, chain, jailedUntil, cfg.BlockTimePollInterval, j.log); err != nil {
		return err
	}

	j.log.Info().Str("node", cfg.TargetNode).Msg("unjailing")
	unjailed, err := j.rpc.Staking.Unjail(ctx, addr, cfg.WalletName, encKey)
	if err != nil {
		return fmt.Errorf("unjail: %w", err)
	}
	j.log.Info().RawJSON("result", unjailed).Msg("unjail submitted")

	if err := sleepCtx(ctx, cfg.SettleDelay); err != nil {
		return err
	}

	set, err = chain.ValidatorSet(ctx)
	if err != nil {
		return err
	}
	j.log.Info().Int("validators", len(set.Validators)).Msg("validator set after unjail")
	if len(set.Validators) != cfg.NodeCount {
		// The rejoin can lag past the settle delay; only strict runs fail.
		if cfg.Strict {
			return fmt.Errorf("validator set has %d members after unjail, want %d",
				len(set.Validators), cfg.NodeCount)
		}
		j.log.Warn().Int("validators", len(set.Validators)).Int("want", cfg.NodeCount).
			Msg("validator set not yet restored after unjail")
	}
	return nil
}

// firstStakingAddress lists the restored wallet's staking addresses and
// returns the first, which is the target validator's bonded address.
func (j *Jail) firstStakingAddress(ctx context.Context, encKey string) (string, error) {
	raw, err := j.rpc.Address.List(ctx, j.cfg.WalletName, chainclient.AddressTypeStaking, encKey)
	if err != nil {
		return "", fmt.Errorf("list staking addresses: %w", err)
	}
	var addrs []string
	if err := json.Unmarshal(raw, &addrs); err != nil {
		return "", fmt.Errorf("decode staking addresses: %w", err)
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("wallet %s has no staking addresses", j.cfg.WalletName)
	}
	return addrs[0], nil
}
