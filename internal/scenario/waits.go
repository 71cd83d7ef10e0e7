package scenario

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/chainward/chainctl/internal/chainclient"
)

// sleepCtx sleeps for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// WaitForValidators polls the validator set until it holds at least count
// members. RPC errors are treated as not-ready: the cluster may still be
// coming up. Bounded only by the caller's context.
func WaitForValidators(ctx context.Context, chain *chainclient.Blockchain, count int, interval time.Duration, log zerolog.Logger) error {
	for {
		set, err := chain.ValidatorSet(ctx)
		if err == nil && len(set.Validators) >= count {
			return nil
		}
		if err != nil {
			log.Debug().Err(err).Msg("validator set not ready")
		} else {
			log.Debug().Int("validators", len(set.Validators)).Int("want", count).
				Msg("waiting for validators")
		}
		if err := sleepCtx(ctx, interval); err != nil {
			return err
		}
	}
}

// WaitForBlocks polls the chain height until at least delta blocks have
// been produced past the baseline.
func WaitForBlocks(ctx context.Context, chain *chainclient.Blockchain, baseline, delta int64, interval time.Duration, log zerolog.Logger) error {
	for {
		height, err := chain.LatestHeight(ctx)
		if err != nil {
			return fmt.Errorf("poll chain height: %w", err)
		}
		produced := height - baseline
		log.Info().Int64("blocks", produced).Int64("want", delta).Msg("waiting for blocks")
		if produced >= delta {
			return nil
		}
		if err := sleepCtx(ctx, interval); err != nil {
			return err
		}
	}
}

// WaitForPort polls a TCP address until it accepts connections.
func WaitForPort(ctx context.Context, addr string, interval time.Duration, log zerolog.Logger) error {
	for {
		conn, err := net.DialTimeout("tcp", addr, interval)
		if err == nil {
			conn.Close()
			return nil
		}
		log.Debug().Str("addr", addr).Err(err).Msg("port not ready")
		if err := sleepCtx(ctx, interval); err != nil {
			return err
		}
	}
}

// WaitForBlockTimePast polls the latest block time until the chain clock
// passes the deadline. Wall-clock time is never consulted; only block time
// counts.
func WaitForBlockTimePast(ctx context.Context, chain *chainclient.Blockchain, deadline time.Time, interval time.Duration, log zerolog.Logger) error {
	for {
		blockTime, err := chain.LatestBlockTime(ctx)
		if err != nil {
			return fmt.Errorf("poll block time: %w", err)
		}
		log.Info().Time("block_time", blockTime).Time("deadline", deadline).
			Msg("waiting for block time")
		if blockTime.After(deadline) {
			return nil
		}
		if err := sleepCtx(ctx, interval); err != nil {
			return err
		}
	}
}
