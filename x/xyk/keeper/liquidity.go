package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xyk-labs/xykpool/x/xyk/types"
)

// AddLiquidity deposits liquidity into a pool in exchange for tracking
// tokens. The two holdings are ordered canonically; when their ratio differs
// from the reserve ratio only the matching portion is consumed and the excess
// comes back as a refund. Newly minted supply is proportional to the fraction
// of the pre-deposit reserve that was just added; a pool whose tracking
// supply has been fully drained restarts at the initial share supply.
func (k Keeper) AddLiquidity(ctx context.Context, poolID uint64, token1, token2 sdk.DecCoin) (refund1, refund2, shares sdk.DecCoin, err error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, sdk.DecCoin{}, err
	}

	if err := pool.AssertBelongsToPool(token1.Denom, "add liquidity"); err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, sdk.DecCoin{}, err
	}
	if err := pool.AssertBelongsToPool(token2.Denom, "add liquidity"); err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, sdk.DecCoin{}, err
	}
	if token1.Denom == token2.Denom {
		return sdk.DecCoin{}, sdk.DecCoin{}, sdk.DecCoin{}, types.ErrValidation.Wrapf(
			"add liquidity: both holdings are %s", token1.Denom)
	}
	if token1.Amount.IsNil() || token1.Amount.IsZero() || token2.Amount.IsNil() || token2.Amount.IsZero() {
		return sdk.DecCoin{}, sdk.DecCoin{}, sdk.DecCoin{}, types.ErrValidation.Wrap(
			"add liquidity: cannot add liquidity from an empty holding")
	}

	// Canonical bucket ordering: bucket1 carries DenomA
	bucket1, bucket2 := token1, token2
	if bucket1.Denom != pool.DenomA {
		bucket1, bucket2 = bucket2, bucket1
	}
	dm, dn := bucket1.Amount, bucket2.Amount

	// Pre-deposit reserve of token1; the mint ratio must use this value
	m := pool.ReserveA

	amount1, amount2 := pool.LiquidityAmounts(dm, dn)

	supply, err := k.shares.ShareSupply(ctx, pool.ShareDenom)
	if err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, sdk.DecCoin{}, err
	}

	var shareAmount sdkmath.LegacyDec
	if supply.IsZero() {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.DecCoin{}, sdk.DecCoin{}, sdk.DecCoin{}, err
		}
		shareAmount = params.InitialShareSupply
	} else {
		if m.IsZero() {
			return sdk.DecCoin{}, sdk.DecCoin{}, sdk.DecCoin{}, types.ErrInvariantBroken.Wrapf(
				"pool %d has outstanding shares but no reserve of %s", poolID, pool.DenomA)
		}
		shareAmount = amount1.Mul(supply).QuoTruncate(m)
	}

	if err := pool.Deposit(sdk.NewDecCoinFromDec(bucket1.Denom, amount1)); err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, sdk.DecCoin{}, err
	}
	if err := pool.Deposit(sdk.NewDecCoinFromDec(bucket2.Denom, amount2)); err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, sdk.DecCoin{}, err
	}

	shares, err = k.shares.MintShares(ctx, pool.ShareDenom, shareAmount)
	if err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, sdk.DecCoin{}, err
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, sdk.DecCoin{}, err
	}

	remainder1 := sdk.NewDecCoinFromDec(bucket1.Denom, dm.Sub(amount1))
	remainder2 := sdk.NewDecCoinFromDec(bucket2.Denom, dn.Sub(amount2))

	k.Logger(ctx).Info("added liquidity",
		"pool_id", poolID,
		bucket1.Denom, amount1.String(),
		bucket2.Denom, amount2.String(),
		"shares", shares.Amount.String(),
	)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyAmountA, amount1.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amount2.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.Amount.String()),
		),
	)

	// Hand the refunds back in the order the caller supplied the holdings
	if token1.Denom == bucket1.Denom {
		return remainder1, remainder2, shares, nil
	}
	return remainder2, remainder1, shares, nil
}

// RemoveLiquidity redeems tracking tokens for a proportional cut of both
// reserves. The redeemed share is amount divided by the full outstanding
// supply, including the tokens being burned; withdrawal amounts round down
// so the reserves can never go negative.
func (k Keeper) RemoveLiquidity(ctx context.Context, poolID uint64, shares sdk.DecCoin) (sdk.DecCoin, sdk.DecCoin, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}

	if shares.Denom != pool.ShareDenom {
		return sdk.DecCoin{}, sdk.DecCoin{}, types.ErrValidation.Wrapf(
			"remove liquidity: tracking tokens %s do not belong to pool %d (%s)", shares.Denom, poolID, pool.ShareDenom)
	}
	if shares.Amount.IsNil() || !shares.Amount.IsPositive() {
		return sdk.DecCoin{}, sdk.DecCoin{}, types.ErrValidation.Wrap(
			"remove liquidity: cannot redeem an empty holding")
	}

	supply, err := k.shares.ShareSupply(ctx, pool.ShareDenom)
	if err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}
	if supply.LT(shares.Amount) {
		return sdk.DecCoin{}, sdk.DecCoin{}, types.ErrInsufficientLiquidity.Wrapf(
			"remove liquidity: redeeming %s exceeds outstanding supply %s", shares.Amount, supply)
	}

	// Round down; clamp a rounding overshoot against the live reserve
	amountA := pool.ReserveA.Mul(shares.Amount).QuoTruncate(supply)
	amountB := pool.ReserveB.Mul(shares.Amount).QuoTruncate(supply)
	amountA = sdkmath.LegacyMinDec(amountA, pool.ReserveA)
	amountB = sdkmath.LegacyMinDec(amountB, pool.ReserveB)

	coinA, err := pool.Withdraw(pool.DenomA, amountA)
	if err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}
	coinB, err := pool.Withdraw(pool.DenomB, amountB)
	if err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}

	if err := k.shares.BurnShares(ctx, shares); err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}

	k.Logger(ctx).Info("removed liquidity",
		"pool_id", poolID,
		"shares", shares.Amount.String(),
		pool.DenomA, amountA.String(),
		pool.DenomB, amountB.String(),
	)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.Amount.String()),
		),
	)

	return coinA, coinB, nil
}
