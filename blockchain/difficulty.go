// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"time"

	"github.com/dowscoin/dows/chaincfg"
)

// GetNextWorkRequired computes the compact target the next block after tip
// must satisfy, given the timestamp a candidate block claims. It mirrors
// the ancestor implementation's branch structure exactly: no retargeting,
// too early in the chain to have a full window, mid-window (with its
// allow-minimum-difficulty and emergency-retarget special cases), and the
// window-boundary retarget.
func GetNextWorkRequired(tip HeaderCtx, candidateTime int64, params *chaincfg.Params) uint32 {
	assert(tip != nil, "GetNextWorkRequired: nil tip")

	if params.NoRetargeting {
		return tip.Bits()
	}

	window := params.BlocksPerRetarget()
	height := int64(tip.Height()) + 1

	// Not enough history yet to have completed a single window: mint at
	// the network's minimum difficulty.
	if height < window {
		return params.PowLimitBits
	}

	targetSpacingSecs := int64(params.TargetSpacing / time.Second)
	targetTimespanSecs := int64(params.TargetTimespan / time.Second)

	if height%window != 0 {
		if params.AllowMinDifficultyBlocks {
			return minDifficultyBits(tip, candidateTime, targetSpacingSecs, int32(window), params)
		}
		return emergencyRetarget(tip, candidateTime, window, targetSpacingSecs, targetTimespanSecs, params)
	}

	// Window boundary: a full retarget over the just-completed window.
	heightFirst := int32(height - window)
	ancestor, avgBits := AncestorAndAverageDifficulty(tip, heightFirst, params)
	return CalculateNextWorkRequired(tip, ancestor.Time(), tip.Time(), avgBits, params)
}

// minDifficultyBits implements the allow-minimum-difficulty special case
// test networks use to stay mineable after a long gap between blocks: a
// candidate arriving long after the tip gets the network's easiest target
// outright, and any other non-boundary block carries forward the most
// recent bits that were not themselves a minimum-difficulty exception.
func minDifficultyBits(tip HeaderCtx, candidateTime, targetSpacingSecs int64, window int32, params *chaincfg.Params) uint32 {
	if candidateTime > tip.Time()+targetSpacingSecs*2 {
		return params.PowLimitBits
	}

	cur := tip
	for cur.Parent() != nil && cur.Height()%window != 0 && cur.Bits() == params.PowLimitBits {
		cur = cur.Parent()
	}
	return cur.Bits()
}

// emergencyRetarget implements the mid-window checks that let difficulty
// react immediately to an extreme run of blocks instead of waiting for
// the next window boundary. The window anchor depends on how far ahead of
// the tip the candidate claims to arrive, matching the two-way branch in
// the ancestor implementation.
func emergencyRetarget(tip HeaderCtx, candidateTime int64, window int64, targetSpacingSecs, targetTimespanSecs int64, params *chaincfg.Params) uint32 {
	heightFirst := int32(int64(tip.Height()) + 1 - window)
	if candidateTime > tip.Time()+targetSpacingSecs/2 {
		heightFirst++
	}

	ancestor, avgBits := AncestorAndAverageDifficulty(tip, heightFirst, params)
	actualTimespan := tip.Time() - ancestor.Time()

	tooHard := candidateTime > tip.Time()+5*targetSpacingSecs
	tooHardOnAverage := actualTimespan-targetTimespanSecs > targetTimespanSecs/4
	tooEasy := actualTimespan < (targetTimespanSecs/4)*3

	if tooHard || tooHardOnAverage || tooEasy {
		return CalculateNextWorkRequired(tip, ancestor.Time(), tip.Time(), avgBits, params)
	}
	return tip.Bits()
}

// CalculateNextWorkRequired folds an elapsed timespan and an average
// window difficulty into a new compact target. avgBits is the average
// *decoded* target over the window (see AncestorAndAverageDifficulty),
// not a compact-encoded value, so the caller need not re-decode it.
//
// The arithmetic intentionally matches the ancestor implementation
// statement for statement, including its underflow fallback: dividing the
// average target by the target timespan before multiplying by the actual
// timespan truncates to zero whenever the average target is smaller than
// the target timespan in seconds, so that order is retried as
// multiply-then-divide on an unmodified copy of the average.
func CalculateNextWorkRequired(tip HeaderCtx, firstBlockTime, currentBlockTime int64, avgBits *big.Int, params *chaincfg.Params) uint32 {
	if params.NoRetargeting {
		return tip.Bits()
	}

	targetTimespanSecs := big.NewInt(int64(params.TargetTimespan / time.Second))

	actualTimespan := currentBlockTime - firstBlockTime
	minTimespan := int64(params.TargetTimespan/time.Second) / 4
	maxTimespan := int64(params.TargetTimespan/time.Second) * 4
	if actualTimespan < minTimespan {
		actualTimespan = minTimespan
	}
	if actualTimespan > maxTimespan {
		actualTimespan = maxTimespan
	}
	actualTimespanBig := big.NewInt(actualTimespan)

	bnNew := new(big.Int).Set(avgBits)
	bnNew2 := new(big.Int).Set(avgBits)

	bnNew.Div(bnNew, targetTimespanSecs)
	bnNew.Mul(bnNew, actualTimespanBig)

	if bnNew.Sign() == 0 {
		bnNew = bnNew2
		bnNew.Mul(bnNew, actualTimespanBig)
		bnNew.Div(bnNew, targetTimespanSecs)
	}

	if bnNew.Cmp(params.PowLimit) > 0 {
		bnNew = new(big.Int).Set(params.PowLimit)
	}

	return BigToCompact(bnNew)
}
