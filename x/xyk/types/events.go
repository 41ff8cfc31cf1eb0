package types

// Event types for the xyk module
const (
	EventTypeCreatePool      = "create_pool"
	EventTypeAddLiquidity    = "add_liquidity"
	EventTypeRemoveLiquidity = "remove_liquidity"
	EventTypeSwap            = "swap"
)

// Event attribute keys
const (
	AttributeKeyPoolID     = "pool_id"
	AttributeKeyPoolName   = "pool_name"
	AttributeKeyDenomA     = "denom_a"
	AttributeKeyDenomB     = "denom_b"
	AttributeKeyAmountA    = "amount_a"
	AttributeKeyAmountB    = "amount_b"
	AttributeKeyFeeRate    = "fee_rate"
	AttributeKeyShares     = "shares"
	AttributeKeyTokenIn    = "token_in"
	AttributeKeyTokenOut   = "token_out"
	AttributeKeyAmountIn   = "amount_in"
	AttributeKeyAmountOut  = "amount_out"
	AttributeKeyInvariantK = "k"
)
