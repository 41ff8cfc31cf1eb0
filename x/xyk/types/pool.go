package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is the state record of a two-asset constant-product liquidity pool.
// DenomA and DenomB are ordered lexicographically at creation and are fixed
// for the lifetime of the pool; reserves are kept as explicit fields selected
// by denom comparison rather than a map.
type Pool struct {
	Id         uint64            `json:"id"`
	DenomA     string            `json:"denom_a"`
	DenomB     string            `json:"denom_b"`
	ReserveA   sdkmath.LegacyDec `json:"reserve_a"`
	ReserveB   sdkmath.LegacyDec `json:"reserve_b"`
	ShareDenom string            `json:"share_denom"`
	FeeRate    sdkmath.LegacyDec `json:"fee_rate"`
}

// NewPool builds a pool from two already canonically ordered holdings.
func NewPool(id uint64, coinA, coinB sdk.DecCoin, shareDenom string, feeRate sdkmath.LegacyDec) Pool {
	return Pool{
		Id:         id,
		DenomA:     coinA.Denom,
		DenomB:     coinB.Denom,
		ReserveA:   coinA.Amount,
		ReserveB:   coinB.Amount,
		ShareDenom: shareDenom,
		FeeRate:    feeRate,
	}
}

// ValidateFeeRate checks the fee percentage is inside [0, 100].
func ValidateFeeRate(feeRate sdkmath.LegacyDec) error {
	if feeRate.IsNil() || feeRate.IsNegative() || feeRate.GT(sdkmath.LegacyNewDec(100)) {
		return ErrValidation.Wrapf("fee rate must be between 0 and 100, got %s", feeRate)
	}
	return nil
}

// Validate checks the structural invariants of the pool record.
func (p Pool) Validate() error {
	if p.DenomA == "" || p.DenomB == "" {
		return ErrValidation.Wrap("pool denoms cannot be empty")
	}
	if p.DenomA == p.DenomB {
		return ErrValidation.Wrapf("pool denoms must differ, got %s twice", p.DenomA)
	}
	if p.DenomA > p.DenomB {
		return ErrValidation.Wrapf("pool denoms out of order: %s > %s", p.DenomA, p.DenomB)
	}
	if p.ReserveA.IsNil() || p.ReserveA.IsNegative() {
		return ErrValidation.Wrapf("reserve of %s is negative", p.DenomA)
	}
	if p.ReserveB.IsNil() || p.ReserveB.IsNegative() {
		return ErrValidation.Wrapf("reserve of %s is negative", p.DenomB)
	}
	if p.ShareDenom == "" {
		return ErrValidation.Wrap("share denom cannot be empty")
	}
	return ValidateFeeRate(p.FeeRate)
}

// BelongsToPool reports whether the denom is one of the pool's two reserves.
func (p Pool) BelongsToPool(denom string) bool {
	return denom == p.DenomA || denom == p.DenomB
}

// AssertBelongsToPool fails with ErrNotPoolMember if the denom is foreign,
// naming the calling operation for diagnostics.
func (p Pool) AssertBelongsToPool(denom, op string) error {
	if !p.BelongsToPool(denom) {
		return ErrNotPoolMember.Wrapf("%s: denom %s is not one of %s/%s", op, denom, p.DenomA, p.DenomB)
	}
	return nil
}

// OtherDenom returns the pool's other token identifier.
func (p Pool) OtherDenom(denom string) (string, error) {
	if err := p.AssertBelongsToPool(denom, "other denom"); err != nil {
		return "", err
	}
	if denom == p.DenomA {
		return p.DenomB, nil
	}
	return p.DenomA, nil
}

// Denoms returns both token identifiers in canonical order.
func (p Pool) Denoms() []string {
	return []string{p.DenomA, p.DenomB}
}

// Name returns the display name of the pool's token pair.
func (p Pool) Name() string {
	return PairName(p.DenomA, p.DenomB)
}

// Reserve returns the balance held for the given denom. The denom must belong
// to the pool.
func (p Pool) Reserve(denom string) sdkmath.LegacyDec {
	if denom == p.DenomA {
		return p.ReserveA
	}
	return p.ReserveB
}

// Deposit adds the full holding amount to the corresponding reserve.
func (p *Pool) Deposit(coin sdk.DecCoin) error {
	if err := p.AssertBelongsToPool(coin.Denom, "deposit"); err != nil {
		return err
	}
	if coin.Amount.IsNil() || coin.Amount.IsNegative() {
		return ErrValidation.Wrapf("deposit: amount of %s is negative", coin.Denom)
	}
	if coin.Denom == p.DenomA {
		p.ReserveA = p.ReserveA.Add(coin.Amount)
	} else {
		p.ReserveB = p.ReserveB.Add(coin.Amount)
	}
	return nil
}

// Withdraw debits the reserve and returns a holding of the requested amount.
// Fails with ErrInsufficientLiquidity if the reserve cannot cover it.
func (p *Pool) Withdraw(denom string, amount sdkmath.LegacyDec) (sdk.DecCoin, error) {
	if err := p.AssertBelongsToPool(denom, "withdraw"); err != nil {
		return sdk.DecCoin{}, err
	}
	if amount.IsNil() || amount.IsNegative() {
		return sdk.DecCoin{}, ErrValidation.Wrapf("withdraw: amount of %s is negative", denom)
	}
	if p.Reserve(denom).LT(amount) {
		return sdk.DecCoin{}, ErrInsufficientLiquidity.Wrapf(
			"withdraw: reserve of %s is %s, requested %s", denom, p.Reserve(denom), amount)
	}
	if denom == p.DenomA {
		p.ReserveA = p.ReserveA.Sub(amount)
	} else {
		p.ReserveB = p.ReserveB.Sub(amount)
	}
	return sdk.NewDecCoinFromDec(denom, amount), nil
}

// LiquidityAmounts computes how much of each canonically ordered deposit
// bucket the pool will actually consume. dm and dn are the offered amounts of
// DenomA and DenomB; m and n are the current reserves. Three cases:
//
//  1. either reserve is zero, or m*dn == n*dm: consume both in full
//  2. m/n < dm/dn: excess of token A, consume dn in full and dn*m/n of A
//  3. otherwise: excess of token B, consume dm in full and dm*n/m of B
//
// Ratios are compared by cross-multiplication so empty reserves never divide.
func (p Pool) LiquidityAmounts(dm, dn sdkmath.LegacyDec) (amount1, amount2 sdkmath.LegacyDec) {
	m, n := p.ReserveA, p.ReserveB
	switch {
	case m.IsZero() || n.IsZero() || m.Mul(dn).Equal(n.Mul(dm)):
		return dm, dn
	case m.Mul(dn).LT(n.Mul(dm)):
		return dn.Mul(m).QuoTruncate(n), dn
	default:
		return dm, dm.Mul(n).QuoTruncate(m)
	}
}
