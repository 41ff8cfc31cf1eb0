package keeper

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/xyk-labs/xykpool/x/xyk/keeper"
	"github.com/xyk-labs/xykpool/x/xyk/types"
)

// AssetRegistry is a test double for the asset keeper. Denoms added to
// NonFungible are rejected by pool creation; everything else is fungible.
type AssetRegistry struct {
	NonFungible map[string]bool
}

func (r AssetRegistry) IsFungible(_ context.Context, denom string) bool {
	return !r.NonFungible[denom]
}

// XykKeeper creates a test keeper for the xyk module backed by an in-memory
// commit store.
func XykKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	return XykKeeperWithAssets(t, AssetRegistry{})
}

// XykKeeperWithAssets is XykKeeper with a caller-controlled asset registry.
func XykKeeperWithAssets(t testing.TB, assets AssetRegistry) (*keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		keeper.NewShareLedger(storeKey),
		assets,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx
}
