package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// ShareSupply is a genesis entry recording the outstanding supply of one
// tracking token.
type ShareSupply struct {
	Denom  string            `json:"denom"`
	Amount sdkmath.LegacyDec `json:"amount"`
}

// GenesisState defines the xyk module's genesis state
type GenesisState struct {
	Params     Params        `json:"params"`
	Pools      []Pool        `json:"pools"`
	NextPoolId uint64        `json:"next_pool_id"`
	Supplies   []ShareSupply `json:"supplies"`
}

// DefaultGenesis returns the default genesis state for the xyk module
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pools:      []Pool{},
		NextPoolId: 1,
		Supplies:   []ShareSupply{},
	}
}

// Validate ensures the genesis state is well-formed
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenIds := make(map[uint64]bool, len(gs.Pools))
	seenPairs := make(map[string]bool, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("pool %d: %w", pool.Id, err)
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool id %d not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		if seenIds[pool.Id] {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		seenIds[pool.Id] = true

		pair := pool.Name()
		if seenPairs[pair] {
			return fmt.Errorf("duplicate pool for pair %s", pair)
		}
		seenPairs[pair] = true
	}

	seenDenoms := make(map[string]bool, len(gs.Supplies))
	for _, supply := range gs.Supplies {
		if supply.Denom == "" {
			return fmt.Errorf("share supply with empty denom")
		}
		if supply.Amount.IsNil() || !supply.Amount.IsPositive() {
			return fmt.Errorf("share supply of %s must be positive", supply.Denom)
		}
		if seenDenoms[supply.Denom] {
			return fmt.Errorf("duplicate share supply for %s", supply.Denom)
		}
		seenDenoms[supply.Denom] = true
	}

	return nil
}
