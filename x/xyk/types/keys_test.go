package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xyk-labs/xykpool/x/xyk/types"
)

func TestPoolByDenomsKey_OrderIndependent(t *testing.T) {
	require.Equal(t,
		types.PoolByDenomsKey("uatom", "uusdt"),
		types.PoolByDenomsKey("uusdt", "uatom"),
	)
}

func TestPoolByDenomsKey_SlashDenomsDoNotCollide(t *testing.T) {
	// Slashes are legal in denoms (ibc vouchers, this module's share denoms),
	// so pairs that concatenate identically must still key differently
	require.NotEqual(t,
		types.PoolByDenomsKey("abc/def", "ghi"),
		types.PoolByDenomsKey("abc", "def/ghi"),
	)
}
