// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg carries the consensus parameters the proof-of-work core
// needs from the wider chain: the difficulty-adjustment knobs, plus the
// network-identity fields a real chaincfg package always carries alongside
// them even when chain bootstrap itself lives elsewhere.
package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// bigOne is 1 represented as a big.Int, defined once to avoid the
// allocation overhead of building it on every use.
var bigOne = big.NewInt(1)

// fromCompactHex decodes a pow-limit string, written as a full hex uint256
// (not a packed compact nBits value), into a big.Int. chainparams.cpp
// encodes pow limits the same way.
func fromCompactHex(hex string) *big.Int {
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("chaincfg: invalid pow limit hex literal " + hex)
	}
	return n
}

// Params defines the consensus parameters the difficulty engine and
// proof-of-work checker need for a given network, plus the ambient
// network-identity fields every real chaincfg.Params carries.
type Params struct {
	// Name is the human-readable identifier for the network.
	Name string

	// Net is the wire protocol magic identifying the network.
	Net wire.BitcoinNet

	// GenesisHash is the published hash of the genesis block for this
	// network, recorded here so a caller that owns block assembly can
	// independently verify it against this core's output.
	GenesisHash *chainhash.Hash

	// PowLimit is the highest proof-of-work target (lowest difficulty)
	// a block may have on this network.
	PowLimit *big.Int

	// PowLimitBits is PowLimit's compact-target encoding, and the bits
	// field of the genesis block.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time it should take to
	// find a full window's worth of blocks.
	TargetTimespan time.Duration

	// TargetSpacing is the desired amount of time between each block.
	TargetSpacing time.Duration

	// AllowMinDifficultyBlocks defines whether the network allows
	// minimum difficulty blocks after a long block-interval gap, used
	// on test networks to keep them mineable with low hash power.
	AllowMinDifficultyBlocks bool

	// NoRetargeting defines whether the network should retarget
	// difficulty at all; used on the regression test network so
	// difficulty stays at the pow limit forever.
	NoRetargeting bool
}

// BlocksPerRetarget returns the number of blocks in one difficulty
// adjustment window under these parameters.
func (p *Params) BlocksPerRetarget() int64 {
	return int64(p.TargetTimespan / p.TargetSpacing)
}

// MainNetParams defines the network parameters for the main network,
// recovered from the ancestor implementation's chainparams.cpp.
var MainNetParams = Params{
	Name:                     "mainnet",
	Net:                      wire.MainNet,
	GenesisHash:              newHashFromStr("0000b277bd61e047d5f32fbb93839be8ef2b5927443665cfa32ba5033e431c67"),
	PowLimit:                 fromCompactHex("000fffff00000000000000000000000000000000000000000000000000000000"),
	PowLimitBits:             0x1f0fffff,
	TargetTimespan:           6 * time.Hour,
	TargetSpacing:            2 * time.Minute,
	AllowMinDifficultyBlocks: false,
	NoRetargeting:            false,
}

// TestNetParams defines the network parameters for the test network,
// recovered from the ancestor implementation's chainparams.cpp.
var TestNetParams = Params{
	Name:                     "testnet",
	Net:                      wire.TestNet3,
	GenesisHash:              newHashFromStr("000d2b44ed3d75acbe0d5676d6653794bc0890f733657ad185e2ba34ddc0ecad"),
	PowLimit:                 fromCompactHex("000fffff00000000000000000000000000000000000000000000000000000000"),
	PowLimitBits:             0x1f0fffff,
	TargetTimespan:           6 * time.Hour,
	TargetSpacing:            2 * time.Minute,
	AllowMinDifficultyBlocks: true,
	NoRetargeting:            false,
}

// RegressionNetParams defines the network parameters for the regression
// test network, recovered from the ancestor implementation's
// chainparams.cpp. Regression nets never retarget.
var RegressionNetParams = Params{
	Name:                     "regtest",
	Net:                      wire.TestNet,
	GenesisHash:              nil,
	PowLimit:                 fromCompactHex("00ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	PowLimitBits:             0x2000ffff,
	TargetTimespan:           6 * time.Hour,
	TargetSpacing:            2 * time.Minute,
	AllowMinDifficultyBlocks: true,
	NoRetargeting:            true,
}

// newHashFromStr decodes a block-header-order (big-endian display,
// little-endian wire) hash string, panicking on malformed input. It is
// only ever called with the literal constants above, so a panic here
// means a programming error, not bad external input.
func newHashFromStr(s string) *chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic("chaincfg: invalid genesis hash literal " + s + ": " + err.Error())
	}
	return h
}
