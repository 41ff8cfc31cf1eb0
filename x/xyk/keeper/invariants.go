package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xyk-labs/xykpool/x/xyk/types"
)

// RegisterInvariants registers all pool invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "well-formed-pools", WellFormedPoolsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-backing", ShareBackingInvariant(k))
}

// AllInvariants runs all invariants of the pool module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := WellFormedPoolsInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ShareBackingInvariant(k)(ctx)
	}
}

// WellFormedPoolsInvariant checks that every stored pool record passes
// structural validation: ordered distinct denoms, non-negative reserves and a
// fee rate inside [0, 100].
func WellFormedPoolsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %d: %v\n", pool.Id, err)
			}
			if pool.Id == 0 || pool.Id >= k.GetNextPoolID(ctx) {
				count++
				msg += fmt.Sprintf("pool %d: id outside the issued range\n", pool.Id)
			}
			return false
		})
		if err != nil {
			count++
			msg += fmt.Sprintf("iterating pools: %v\n", err)
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "well-formed-pools",
			fmt.Sprintf("found %d malformed pools\n%s", count, msg),
		), broken
	}
}

// ShareBackingInvariant checks that outstanding tracking tokens are backed:
// a pool with positive share supply must hold liquidity, and a pool with
// liquidity must have shares outstanding to redeem it.
func ShareBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			supply, err := k.shares.ShareSupply(ctx, pool.ShareDenom)
			if err != nil {
				count++
				msg += fmt.Sprintf("pool %d: reading share supply: %v\n", pool.Id, err)
				return false
			}
			if supply.IsNegative() {
				count++
				msg += fmt.Sprintf("pool %d: negative share supply %s\n", pool.Id, supply)
			}
			if supply.IsPositive() && pool.ReserveA.IsZero() && pool.ReserveB.IsZero() {
				count++
				msg += fmt.Sprintf("pool %d: %s shares outstanding against empty reserves\n",
					pool.Id, supply)
			}
			if supply.IsZero() && (pool.ReserveA.IsPositive() || pool.ReserveB.IsPositive()) {
				count++
				msg += fmt.Sprintf("pool %d: reserves %s/%s held with no shares outstanding\n",
					pool.Id, pool.ReserveA, pool.ReserveB)
			}
			return false
		})
		if err != nil {
			count++
			msg += fmt.Sprintf("iterating pools: %v\n", err)
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "share-backing",
			fmt.Sprintf("found %d pools with unbacked shares\n%s", count, msg),
		), broken
	}
}
