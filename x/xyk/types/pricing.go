package types

import (
	sdkmath "cosmossdk.io/math"
)

// K returns the constant-product invariant value, the product of the two
// reserve balances.
func (p Pool) K() sdkmath.LegacyDec {
	return p.ReserveA.Mul(p.ReserveB)
}

// feeModifier returns r = (100 - feeRate) / 100, the fraction of the input
// that reaches the curve after the pool fee.
func (p Pool) feeModifier() sdkmath.LegacyDec {
	return sdkmath.LegacyNewDec(100).Sub(p.FeeRate).QuoTruncate(sdkmath.LegacyNewDec(100))
}

// OutputFor solves (x + r*dx)(y - dy) = x*y for dy, the amount of the other
// token paid out for inputAmount of inputDenom:
//
//	dy = (dx * r * y) / (x + r * dx)
//
// The quotient is truncated so rounding always favors the pool, keeping k
// non-decreasing across swaps. The input amount itself is not bounded here;
// zero or very large inputs are mathematically well-defined.
func (p Pool) OutputFor(inputDenom string, inputAmount sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if err := p.AssertBelongsToPool(inputDenom, "calculate output"); err != nil {
		return sdkmath.LegacyDec{}, err
	}
	if inputAmount.IsNil() || inputAmount.IsNegative() {
		return sdkmath.LegacyDec{}, ErrValidation.Wrapf("calculate output: input amount %s is negative", inputAmount)
	}

	other, err := p.OtherDenom(inputDenom)
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}

	x := p.Reserve(inputDenom)
	y := p.Reserve(other)
	r := p.feeModifier()

	denominator := x.Add(r.Mul(inputAmount))
	if denominator.IsZero() {
		return sdkmath.LegacyDec{}, ErrInsufficientLiquidity.Wrap("calculate output: pool is empty")
	}
	return inputAmount.Mul(r).Mul(y).QuoTruncate(denominator), nil
}

// InputFor solves the same identity for dx, the input required to receive
// outputAmount of outputDenom:
//
//	dx = (dy * x) / (r * (y - dy))
//
// where y is the reserve of the output token and x the reserve of the other.
// The quotient is rounded up so the trader can never underpay for the
// requested output. Fails with ErrInsufficientLiquidity when outputAmount
// meets or exceeds the output reserve, where the formula is undefined.
func (p Pool) InputFor(outputDenom string, outputAmount sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if err := p.AssertBelongsToPool(outputDenom, "calculate input"); err != nil {
		return sdkmath.LegacyDec{}, err
	}
	if outputAmount.IsNil() || outputAmount.IsNegative() {
		return sdkmath.LegacyDec{}, ErrValidation.Wrapf("calculate input: output amount %s is negative", outputAmount)
	}

	other, err := p.OtherDenom(outputDenom)
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}

	x := p.Reserve(other)
	y := p.Reserve(outputDenom)
	if outputAmount.GTE(y) {
		return sdkmath.LegacyDec{}, ErrInsufficientLiquidity.Wrapf(
			"calculate input: desired output %s meets or exceeds reserve %s of %s", outputAmount, y, outputDenom)
	}

	r := p.feeModifier()
	denominator := r.Mul(y.Sub(outputAmount))
	if denominator.IsZero() {
		return sdkmath.LegacyDec{}, ErrInsufficientLiquidity.Wrap("calculate input: fee rate consumes the entire input")
	}
	return outputAmount.Mul(x).QuoRoundUp(denominator), nil
}
