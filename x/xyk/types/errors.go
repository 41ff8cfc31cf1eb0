package types

import (
	"cosmossdk.io/errors"
)

// xyk module sentinel errors
var (
	ErrValidation            = errors.Register(ModuleName, 2, "invalid input")
	ErrNotPoolMember         = errors.Register(ModuleName, 3, "token does not belong to the pool")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 4, "insufficient liquidity in pool")
	ErrInsufficientInput     = errors.Register(ModuleName, 5, "insufficient input for requested output")
	ErrSlippage              = errors.Register(ModuleName, 6, "output amount below minimum")
	ErrPoolNotFound          = errors.Register(ModuleName, 7, "pool not found")
	ErrPoolExists            = errors.Register(ModuleName, 8, "pool already exists for token pair")
	ErrInvariantBroken       = errors.Register(ModuleName, 9, "pool invariant violated")
)
