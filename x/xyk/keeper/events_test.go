package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/xyk-labs/xykpool/testutil/keeper"
	"github.com/xyk-labs/xykpool/x/xyk/types"
)

func eventsOfType(ctx sdk.Context, eventType string) []sdk.Event {
	var found []sdk.Event
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == eventType {
			found = append(found, ev)
		}
	}
	return found
}

func TestEvents_EmittedOnSuccess(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, shares := setupPool(t, k, ctx, 1000, 1000, 0)

	require.Len(t, eventsOfType(ctx, types.EventTypeCreatePool), 1)

	_, _, _, err := k.AddLiquidity(ctx, poolID, dec("uatom", 100), dec("uusdt", 100))
	require.NoError(t, err)
	require.Len(t, eventsOfType(ctx, types.EventTypeAddLiquidity), 1)

	_, err = k.Swap(ctx, poolID, dec("uatom", 10))
	require.NoError(t, err)
	require.Len(t, eventsOfType(ctx, types.EventTypeSwap), 1)

	_, _, err = k.RemoveLiquidity(ctx, poolID, shares)
	require.NoError(t, err)
	require.Len(t, eventsOfType(ctx, types.EventTypeRemoveLiquidity), 1)
}

func TestEvents_NotEmittedOnFailure(t *testing.T) {
	k, ctx := keepertest.XykKeeper(t)
	poolID, _ := setupPool(t, k, ctx, 1000, 1000, 0)

	baseline := len(ctx.EventManager().Events())

	_, err := k.Swap(ctx, poolID, dec("ubtc", 10))
	require.Error(t, err)

	_, err = k.SwapExactInput(ctx, poolID, dec("uatom", 100), dec("uusdt", 95))
	require.Error(t, err)

	_, _, _, err = k.AddLiquidity(ctx, poolID, dec("uatom", 0), dec("uusdt", 1))
	require.Error(t, err)

	require.Len(t, ctx.EventManager().Events(), baseline)
}
