package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/xyk-labs/xykpool/testutil/keeper"
	"github.com/xyk-labs/xykpool/x/xyk/types"
)

func TestSwap_Valid(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	out, err := k.Swap(ctx, poolID, dec("uatom", 100))
	require.NoError(t, err)

	require.Equal(t, "uusdt", out.Denom)
	want := math.LegacyNewDec(100000).QuoTruncate(math.LegacyNewDec(1100))
	require.Equal(t, want, out.Amount)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(1100), pool.ReserveA)
	require.Equal(t, math.LegacyNewDec(1000).Sub(want), pool.ReserveB)

	// With no fee, k holds at 1,000,000 up to truncation dust
	require.True(t, pool.K().GTE(math.LegacyNewDec(1000000)))
	require.True(t, pool.K().LTE(math.LegacyNewDec(1000000).Add(math.LegacyNewDecWithPrec(1, 10))))
}

func TestSwap_FeeGrowsInvariant(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 1)

	kBefore := math.LegacyNewDec(1000000)

	_, err := k.Swap(ctx, poolID, dec("uatom", 100))
	require.NoError(t, err)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.True(t, pool.K().GT(kBefore))
}

func TestSwap_ForeignToken(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	_, err := k.Swap(ctx, poolID, dec("ubtc", 100))
	require.ErrorIs(t, err, types.ErrNotPoolMember)
}

func TestSwap_EmptyHolding(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	_, err := k.Swap(ctx, poolID, dec("uatom", 0))
	require.ErrorIs(t, err, types.ErrValidation)
}

func TestSwap_PoolNotFound(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)

	_, err := k.Swap(ctx, 99, dec("uatom", 100))
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestSwapExactInput_Valid(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	out, err := k.SwapExactInput(ctx, poolID, dec("uatom", 100), dec("uusdt", 90))
	require.NoError(t, err)
	require.True(t, out.Amount.GTE(math.LegacyNewDec(90)))

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(1100), pool.ReserveA)
}

func TestSwapExactInput_SlippageLeavesPoolUntouched(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	_, err := k.SwapExactInput(ctx, poolID, dec("uatom", 100), dec("uusdt", 95))
	require.ErrorIs(t, err, types.ErrSlippage)

	// The failed trade must not leak any state
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(1000), pool.ReserveA)
	require.Equal(t, math.LegacyNewDec(1000), pool.ReserveB)
}

func TestSwapExactInput_UnsetMinAmount(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	// A minimum holding with a nil amount must error before anything runs
	require.NotPanics(t, func() {
		_, err := k.SwapExactInput(ctx, poolID, dec("uatom", 100), sdk.DecCoin{Denom: "uusdt"})
		require.ErrorIs(t, err, types.ErrValidation)
	})

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(1000), pool.ReserveA)
	require.Equal(t, math.LegacyNewDec(1000), pool.ReserveB)
}

func TestSwapExactInput_MinDenomMismatch(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	_, err := k.SwapExactInput(ctx, poolID, dec("uatom", 100), dec("uatom", 90))
	require.ErrorIs(t, err, types.ErrValidation)
}

func TestSwapExactOutput_Valid(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	out, remainder, err := k.SwapExactOutput(ctx, poolID, dec("uatom", 2000), dec("uusdt", 500))
	require.NoError(t, err)

	// dx = 500 * 1000 / (1000 - 500) = 1000, exactly
	require.Equal(t, math.LegacyNewDec(500), out.Amount)
	require.Equal(t, "uatom", remainder.Denom)
	require.Equal(t, math.LegacyNewDec(1000), remainder.Amount)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(2000), pool.ReserveA)
	require.Equal(t, math.LegacyNewDec(500), pool.ReserveB)
}

func TestSwapExactOutput_InsufficientInput(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	_, _, err := k.SwapExactOutput(ctx, poolID, dec("uatom", 999), dec("uusdt", 500))
	require.ErrorIs(t, err, types.ErrInsufficientInput)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(1000), pool.ReserveA)
}

func TestSwapExactOutput_DrainRejected(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	_, _, err := k.SwapExactOutput(ctx, poolID, dec("uatom", 1000000), dec("uusdt", 1000))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestSwapExactOutput_SameDenom(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	_, _, err := k.SwapExactOutput(ctx, poolID, dec("uatom", 100), dec("uatom", 50))
	require.ErrorIs(t, err, types.ErrValidation)
}

func TestSimulateSwap_DoesNotMutate(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	out, err := k.SimulateSwap(ctx, poolID, dec("uatom", 100))
	require.NoError(t, err)
	require.Equal(t, "uusdt", out.Denom)
	require.Equal(t, math.LegacyNewDec(100000).QuoTruncate(math.LegacyNewDec(1100)), out.Amount)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(1000), pool.ReserveA)
	require.Equal(t, math.LegacyNewDec(1000), pool.ReserveB)

	// A real swap returns the simulated amount
	real, err := k.Swap(ctx, poolID, dec("uatom", 100))
	require.NoError(t, err)
	require.Equal(t, out, real)
}
