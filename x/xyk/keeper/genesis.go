package keeper

import (
	"context"
	"fmt"

	"github.com/xyk-labs/xykpool/x/xyk/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	nextID := genState.NextPoolId
	if nextID == 0 {
		nextID = 1
	}
	k.SetNextPoolID(ctx, nextID)

	for i := range genState.Pools {
		pool := genState.Pools[i]
		if err := k.SetPool(ctx, &pool); err != nil {
			return fmt.Errorf("failed to store pool %d: %w", pool.Id, err)
		}
		k.setPoolByDenoms(ctx, pool.DenomA, pool.DenomB, pool.Id)
	}

	// Import-time supplies start from zero, so minting restores them exactly
	for _, supply := range genState.Supplies {
		if _, err := k.shares.MintShares(ctx, supply.Denom, supply.Amount); err != nil {
			return fmt.Errorf("failed to restore share supply of %s: %w", supply.Denom, err)
		}
	}

	return nil
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()
	genesis.NextPoolId = k.GetNextPoolID(ctx)

	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Pools = pools

	for _, pool := range pools {
		supply, err := k.shares.ShareSupply(ctx, pool.ShareDenom)
		if err != nil {
			return nil, err
		}
		if supply.IsZero() {
			continue
		}
		genesis.Supplies = append(genesis.Supplies, types.ShareSupply{
			Denom:  pool.ShareDenom,
			Amount: supply,
		})
	}

	return genesis, nil
}
