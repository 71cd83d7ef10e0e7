package chainclient

import (
	"encoding/json"
	"fmt"
)

// Punishment is the chain-owned record attached to a jailed staking
// address. The client consumes it, never constructs it.
type Punishment struct {
	Kind        string `json:"kind"`
	SlashAmount string `json:"slash_amount"`
	// JailedUntil is a unix timestamp in seconds.
	JailedUntil int64 `json:"jailed_until"`
}

// StakingState is the subset of staking_state the scenario interprets.
type StakingState struct {
	Punishment *Punishment `json:"punishment"`
}

// DecodeStakingState decodes a raw staking_state result.
func DecodeStakingState(raw json.RawMessage) (*StakingState, error) {
	var state StakingState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode staking state: %w", err)
	}
	return &state, nil
}
