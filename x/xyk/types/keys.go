package types

import (
	"encoding/binary"
	"fmt"
)

const (
	// ModuleName defines the module name
	ModuleName = "xyk"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes
var (
	PoolKeyPrefix         = []byte{0x01} // prefix for pool records
	PoolCountKey          = []byte{0x02} // key for the next pool id counter
	PoolByDenomsKeyPrefix = []byte{0x03} // prefix for pool lookup by token pair
	ParamsKey             = []byte{0x04} // key for module parameters
	ShareSupplyKeyPrefix  = []byte{0x05} // prefix for tracking-token supplies
)

// PoolKey returns the store key for a pool by id
func PoolKey(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return append(PoolKeyPrefix, bz...)
}

// PoolByDenomsKey returns the store key indexing a pool by its token pair.
// Denoms are sorted so lookup is order-independent. The zero-byte separator
// cannot appear in a denom, so pairs like (a/b, c) and (a, b/c) never collide.
func PoolByDenomsKey(denomA, denomB string) []byte {
	if denomA > denomB {
		denomA, denomB = denomB, denomA
	}
	key := append(PoolByDenomsKeyPrefix, []byte(denomA)...)
	key = append(key, 0x00)
	return append(key, []byte(denomB)...)
}

// ShareSupplyKey returns the store key for a tracking-token supply entry
func ShareSupplyKey(denom string) []byte {
	return append(ShareSupplyKeyPrefix, []byte(denom)...)
}

// PoolShareDenom derives the tracking-token denom for a pool. Each pool owns
// exactly one share denom for the lifetime of the pool.
func PoolShareDenom(poolID uint64) string {
	return fmt.Sprintf("%s/pool/%d", ModuleName, poolID)
}

// PairName returns the canonical display name of a token pair
func PairName(denomA, denomB string) string {
	if denomA > denomB {
		denomA, denomB = denomB, denomA
	}
	return fmt.Sprintf("%s-%s", denomA, denomB)
}
