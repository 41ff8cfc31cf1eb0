package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xyk-labs/xykpool/x/xyk/types"
)

// Swap trades the full input holding against the pool at the constant-product
// price and returns the output holding. The input must be one of the pool's
// two tokens and non-empty. The swap fails with ErrInvariantBroken if the
// invariant value k would shrink, which cannot happen under truncating
// division but is checked before the pool record is persisted.
func (k Keeper) Swap(ctx context.Context, poolID uint64, input sdk.DecCoin) (sdk.DecCoin, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return sdk.DecCoin{}, err
	}

	if err := pool.AssertBelongsToPool(input.Denom, "swap"); err != nil {
		return sdk.DecCoin{}, err
	}
	if input.Amount.IsNil() || !input.Amount.IsPositive() {
		return sdk.DecCoin{}, types.ErrValidation.Wrap("swap: cannot swap an empty holding")
	}

	outputDenom, err := pool.OtherDenom(input.Denom)
	if err != nil {
		return sdk.DecCoin{}, err
	}
	outputAmount, err := pool.OutputFor(input.Denom, input.Amount)
	if err != nil {
		return sdk.DecCoin{}, err
	}

	kBefore := pool.K()

	output, err := pool.Withdraw(outputDenom, outputAmount)
	if err != nil {
		return sdk.DecCoin{}, err
	}
	if err := pool.Deposit(input); err != nil {
		return sdk.DecCoin{}, err
	}

	if pool.K().LT(kBefore) {
		return sdk.DecCoin{}, types.ErrInvariantBroken.Wrapf(
			"swap: k decreased from %s to %s on pool %d", kBefore, pool.K(), poolID)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return sdk.DecCoin{}, err
	}

	k.Logger(ctx).Info("swap executed",
		"pool_id", poolID,
		"token_in", input.Denom,
		"amount_in", input.Amount.String(),
		"token_out", output.Denom,
		"amount_out", output.Amount.String(),
	)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTokenIn, input.Denom),
			sdk.NewAttribute(types.AttributeKeyAmountIn, input.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyTokenOut, output.Denom),
			sdk.NewAttribute(types.AttributeKeyAmountOut, output.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyInvariantK, pool.K().String()),
		),
	)

	return output, nil
}

// SwapExactInput swaps the full input but fails with ErrSlippage, leaving the
// pool untouched, if the output would come in under minAmountOut. The trade
// runs against a cached branch of the store that is only written back on
// success.
func (k Keeper) SwapExactInput(ctx context.Context, poolID uint64, input, minAmountOut sdk.DecCoin) (sdk.DecCoin, error) {
	if minAmountOut.Amount.IsNil() {
		return sdk.DecCoin{}, types.ErrValidation.Wrapf(
			"swap: minimum output amount of %s is not set", minAmountOut.Denom)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	output, err := k.Swap(cacheCtx, poolID, input)
	if err != nil {
		return sdk.DecCoin{}, err
	}

	if output.Denom != minAmountOut.Denom {
		return sdk.DecCoin{}, types.ErrValidation.Wrapf(
			"swap: minimum output denom %s does not match output denom %s", minAmountOut.Denom, output.Denom)
	}
	if output.Amount.LT(minAmountOut.Amount) {
		return sdk.DecCoin{}, types.ErrSlippage.Wrapf(
			"swap: output %s%s is below the minimum %s%s",
			output.Amount, output.Denom, minAmountOut.Amount, minAmountOut.Denom)
	}

	write()
	return output, nil
}

// SwapExactOutput buys exactly desiredOut from the pool, consuming only as
// much of the input holding as the price requires and returning the rest as a
// remainder. Fails with ErrInsufficientInput when the holding cannot cover
// the required amount.
func (k Keeper) SwapExactOutput(ctx context.Context, poolID uint64, input, desiredOut sdk.DecCoin) (sdk.DecCoin, sdk.DecCoin, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}

	if err := pool.AssertBelongsToPool(input.Denom, "swap"); err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}
	if err := pool.AssertBelongsToPool(desiredOut.Denom, "swap"); err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}
	if input.Denom == desiredOut.Denom {
		return sdk.DecCoin{}, sdk.DecCoin{}, types.ErrValidation.Wrapf(
			"swap: input and desired output are both %s", input.Denom)
	}
	if desiredOut.Amount.IsNil() || !desiredOut.Amount.IsPositive() {
		return sdk.DecCoin{}, sdk.DecCoin{}, types.ErrValidation.Wrap("swap: desired output is empty")
	}

	required, err := pool.InputFor(desiredOut.Denom, desiredOut.Amount)
	if err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}
	if input.Amount.IsNil() || input.Amount.LT(required) {
		return sdk.DecCoin{}, sdk.DecCoin{}, types.ErrInsufficientInput.Wrapf(
			"swap: holding %s%s cannot cover the required input %s%s",
			input.Amount, input.Denom, required, input.Denom)
	}

	kBefore := pool.K()

	output, err := pool.Withdraw(desiredOut.Denom, desiredOut.Amount)
	if err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}
	if err := pool.Deposit(sdk.NewDecCoinFromDec(input.Denom, required)); err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}

	if pool.K().LT(kBefore) {
		return sdk.DecCoin{}, sdk.DecCoin{}, types.ErrInvariantBroken.Wrapf(
			"swap: k decreased from %s to %s on pool %d", kBefore, pool.K(), poolID)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return sdk.DecCoin{}, sdk.DecCoin{}, err
	}

	remainder := sdk.NewDecCoinFromDec(input.Denom, input.Amount.Sub(required))

	k.Logger(ctx).Info("swap executed",
		"pool_id", poolID,
		"token_in", input.Denom,
		"amount_in", required.String(),
		"token_out", output.Denom,
		"amount_out", output.Amount.String(),
	)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTokenIn, input.Denom),
			sdk.NewAttribute(types.AttributeKeyAmountIn, required.String()),
			sdk.NewAttribute(types.AttributeKeyTokenOut, output.Denom),
			sdk.NewAttribute(types.AttributeKeyAmountOut, output.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyInvariantK, pool.K().String()),
		),
	)

	return output, remainder, nil
}

// SimulateSwap prices an input against the pool without mutating state.
func (k Keeper) SimulateSwap(ctx context.Context, poolID uint64, input sdk.DecCoin) (sdk.DecCoin, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return sdk.DecCoin{}, err
	}
	outputDenom, err := pool.OtherDenom(input.Denom)
	if err != nil {
		return sdk.DecCoin{}, err
	}
	outputAmount, err := pool.OutputFor(input.Denom, input.Amount)
	if err != nil {
		return sdk.DecCoin{}, err
	}
	return sdk.NewDecCoinFromDec(outputDenom, outputAmount), nil
}
