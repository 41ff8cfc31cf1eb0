package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xyk-labs/xykpool/x/xyk/types"
)

// GetNextPoolID returns the id the next created pool will receive
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.PoolCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextPoolID sets the next pool id counter
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	k.getStore(ctx).Set(types.PoolCountKey, bz)
}

// CreatePool establishes a new pool from two starting holdings and a fee
// percentage, and mints the initial tracking-token supply to the caller.
// Token denoms are ordered lexicographically so pool naming and reserve
// iteration are stable. No fee is charged on the initial deposit.
func (k Keeper) CreatePool(ctx context.Context, coinA, coinB sdk.DecCoin, feeRate sdkmath.LegacyDec) (*types.Pool, sdk.DecCoin, error) {
	if coinA.Denom == coinB.Denom {
		return nil, sdk.DecCoin{}, types.ErrValidation.Wrapf(
			"pools may only be created between two different tokens, got %s twice", coinA.Denom)
	}
	if err := coinA.Validate(); err != nil {
		return nil, sdk.DecCoin{}, types.ErrValidation.Wrapf("holding %s: %v", coinA.Denom, err)
	}
	if err := coinB.Validate(); err != nil {
		return nil, sdk.DecCoin{}, types.ErrValidation.Wrapf("holding %s: %v", coinB.Denom, err)
	}
	if !k.assets.IsFungible(ctx, coinA.Denom) {
		return nil, sdk.DecCoin{}, types.ErrValidation.Wrapf("asset %s is not fungible", coinA.Denom)
	}
	if !k.assets.IsFungible(ctx, coinB.Denom) {
		return nil, sdk.DecCoin{}, types.ErrValidation.Wrapf("asset %s is not fungible", coinB.Denom)
	}
	if coinA.Amount.IsZero() || coinB.Amount.IsZero() {
		return nil, sdk.DecCoin{}, types.ErrValidation.Wrap("cannot create a pool from an empty holding")
	}
	if err := types.ValidateFeeRate(feeRate); err != nil {
		return nil, sdk.DecCoin{}, err
	}

	// Canonical lexicographic ordering
	if coinA.Denom > coinB.Denom {
		coinA, coinB = coinB, coinA
	}

	if _, err := k.GetPoolByDenoms(ctx, coinA.Denom, coinB.Denom); err == nil {
		return nil, sdk.DecCoin{}, types.ErrPoolExists.Wrapf("pair %s", types.PairName(coinA.Denom, coinB.Denom))
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, sdk.DecCoin{}, err
	}

	poolID := k.GetNextPoolID(ctx)
	k.SetNextPoolID(ctx, poolID+1)
	pool := types.NewPool(poolID, coinA, coinB, types.PoolShareDenom(poolID), feeRate)
	if err := pool.Validate(); err != nil {
		return nil, sdk.DecCoin{}, err
	}

	shares, err := k.shares.MintShares(ctx, pool.ShareDenom, params.InitialShareSupply)
	if err != nil {
		return nil, sdk.DecCoin{}, err
	}

	if err := k.SetPool(ctx, &pool); err != nil {
		return nil, sdk.DecCoin{}, err
	}
	k.setPoolByDenoms(ctx, pool.DenomA, pool.DenomB, poolID)

	k.Logger(ctx).Info("created pool",
		"pool_id", poolID,
		"name", pool.Name(),
		"reserve_a", pool.ReserveA.String(),
		"reserve_b", pool.ReserveB.String(),
		"fee_rate", pool.FeeRate.String(),
	)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreatePool,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyPoolName, pool.Name()),
			sdk.NewAttribute(types.AttributeKeyDenomA, pool.DenomA),
			sdk.NewAttribute(types.AttributeKeyDenomB, pool.DenomB),
			sdk.NewAttribute(types.AttributeKeyAmountA, pool.ReserveA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, pool.ReserveB.String()),
			sdk.NewAttribute(types.AttributeKeyFeeRate, pool.FeeRate.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.Amount.String()),
		),
	)

	return &pool, shares, nil
}

// GetPool retrieves a pool by its numeric id.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	var pool types.Pool
	if err := k.cdc.UnmarshalJSON(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	bz, err := k.cdc.MarshalJSON(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	k.getStore(ctx).Set(types.PoolKey(pool.Id), bz)
	return nil
}

// GetPoolByDenoms retrieves a pool by its token pair, order-independent.
func (k Keeper) GetPoolByDenoms(ctx context.Context, denomA, denomB string) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolByDenomsKey(denomA, denomB))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pair %s", types.PairName(denomA, denomB))
	}
	return k.GetPool(ctx, binary.BigEndian.Uint64(bz))
}

func (k Keeper) setPoolByDenoms(ctx context.Context, denomA, denomB string, poolID uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	k.getStore(ctx).Set(types.PoolByDenomsKey(denomA, denomB), bz)
}

// IteratePools iterates over all pools in id order
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns all pools
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}
