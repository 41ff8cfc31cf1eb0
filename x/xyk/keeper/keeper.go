package keeper

import (
	"context"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xyk-labs/xykpool/x/xyk/types"
)

// Keeper of the xyk store
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      *codec.LegacyAmino
	shares   types.ShareBank
	assets   types.AssetKeeper
}

// NewKeeper creates a new xyk Keeper instance. The ShareBank capability is
// held privately; callers that do not bring their own can use NewShareLedger
// backed by the same store key.
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	shares types.ShareBank,
	assets types.AssetKeeper,
) *Keeper {
	return &Keeper{
		storeKey: key,
		cdc:      cdc,
		shares:   shares,
		assets:   assets,
	}
}

// getStore returns the KVStore for the xyk module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-tagged logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetParams returns the module parameters, falling back to defaults when the
// store has not been initialized.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := k.cdc.UnmarshalJSON(bz, &params); err != nil {
		return types.Params{}, err
	}
	return params, nil
}

// SetParams validates and stores the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrValidation.Wrapf("params: %v", err)
	}

	bz, err := k.cdc.MarshalJSON(params)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}

// ShareSupply exposes the outstanding tracking-token supply for a denom.
func (k Keeper) ShareSupply(ctx context.Context, denom string) (sdkmath.LegacyDec, error) {
	return k.shares.ShareSupply(ctx, denom)
}
