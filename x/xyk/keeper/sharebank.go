package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xyk-labs/xykpool/x/xyk/types"
)

// ShareLedger is a store-backed implementation of the ShareBank capability.
// It tracks the outstanding supply of each tracking token; holdings
// themselves travel as values between the pool and its callers.
type ShareLedger struct {
	storeKey storetypes.StoreKey
}

var _ types.ShareBank = ShareLedger{}

// NewShareLedger creates a share ledger persisting supplies under the given
// store key.
func NewShareLedger(key storetypes.StoreKey) ShareLedger {
	return ShareLedger{storeKey: key}
}

func (l ShareLedger) getStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(l.storeKey)
}

// ShareSupply returns the total outstanding supply of a tracking token.
func (l ShareLedger) ShareSupply(ctx context.Context, denom string) (sdkmath.LegacyDec, error) {
	bz := l.getStore(ctx).Get(types.ShareSupplyKey(denom))
	if bz == nil {
		return sdkmath.LegacyZeroDec(), nil
	}

	var supply sdkmath.LegacyDec
	if err := supply.Unmarshal(bz); err != nil {
		return sdkmath.LegacyDec{}, err
	}
	return supply, nil
}

func (l ShareLedger) setSupply(ctx context.Context, denom string, supply sdkmath.LegacyDec) error {
	store := l.getStore(ctx)
	if supply.IsZero() {
		store.Delete(types.ShareSupplyKey(denom))
		return nil
	}

	bz, err := supply.Marshal()
	if err != nil {
		return err
	}
	store.Set(types.ShareSupplyKey(denom), bz)
	return nil
}

// MintShares creates new tracking-token supply and returns the minted holding.
func (l ShareLedger) MintShares(ctx context.Context, denom string, amount sdkmath.LegacyDec) (sdk.DecCoin, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return sdk.DecCoin{}, types.ErrValidation.Wrapf("mint amount must be positive, got %s", amount)
	}

	supply, err := l.ShareSupply(ctx, denom)
	if err != nil {
		return sdk.DecCoin{}, err
	}
	if err := l.setSupply(ctx, denom, supply.Add(amount)); err != nil {
		return sdk.DecCoin{}, err
	}
	return sdk.NewDecCoinFromDec(denom, amount), nil
}

// BurnShares destroys the given tracking-token holding.
func (l ShareLedger) BurnShares(ctx context.Context, shares sdk.DecCoin) error {
	if shares.Amount.IsNil() || shares.Amount.IsNegative() {
		return types.ErrValidation.Wrapf("burn amount must be non-negative, got %s", shares.Amount)
	}

	supply, err := l.ShareSupply(ctx, shares.Denom)
	if err != nil {
		return err
	}
	if supply.LT(shares.Amount) {
		return types.ErrInsufficientLiquidity.Wrapf(
			"burn %s exceeds outstanding supply %s of %s", shares.Amount, supply, shares.Denom)
	}
	return l.setSupply(ctx, shares.Denom, supply.Sub(shares.Amount))
}
