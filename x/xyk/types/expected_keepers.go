package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ShareBank is the mint/burn capability for pool tracking tokens. It is held
// privately by the keeper and invoked only by pool creation, add-liquidity
// and remove-liquidity; it is never reachable from any query surface.
type ShareBank interface {
	// MintShares creates new tracking-token supply and returns the minted
	// holding.
	MintShares(ctx context.Context, denom string, amount sdkmath.LegacyDec) (sdk.DecCoin, error)

	// BurnShares destroys the given tracking-token holding.
	BurnShares(ctx context.Context, shares sdk.DecCoin) error

	// ShareSupply returns the total outstanding supply of a tracking token.
	ShareSupply(ctx context.Context, denom string) (sdkmath.LegacyDec, error)
}

// AssetKeeper answers asset metadata queries the pool engine needs. The pool
// only accepts fungible (divisible, non-unique-instance) token kinds.
type AssetKeeper interface {
	IsFungible(ctx context.Context, denom string) bool
}
