package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// Params defines the parameters for the xyk module
type Params struct {
	// InitialShareSupply is the amount of tracking tokens minted when a pool
	// is created or re-supplied after a full drain. It fixes the starting
	// denomination of the cap table.
	InitialShareSupply sdkmath.LegacyDec `json:"initial_share_supply"`
}

// DefaultParams returns default parameters for the xyk module
func DefaultParams() Params {
	return Params{
		InitialShareSupply: sdkmath.LegacyNewDec(100),
	}
}

// Validate ensures the parameters are well-formed
func (p Params) Validate() error {
	if p.InitialShareSupply.IsNil() || !p.InitialShareSupply.IsPositive() {
		return fmt.Errorf("initial share supply must be positive, got %s", p.InitialShareSupply)
	}
	return nil
}
