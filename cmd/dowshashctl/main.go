// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// dowshashctl is a small command-line tool for exercising the consensus
// core directly: hashing a header preimage with DowsHash, computing the
// next required difficulty for a synthetic ancestor chain, or mining a
// regtest-difficulty header to demonstrate the whole pipeline end to end.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/dowscoin/dows/blockchain"
	"github.com/dowscoin/dows/chaincfg"
	"github.com/dowscoin/dows/dowshash"
	"github.com/dowscoin/dows/mining/dowsminer"
)

type options struct {
	Hash struct {
		Preimage string `long:"preimage" description:"64-char hex double-SHA-256 preimage to run through DowsHash" required:"true"`
	} `command:"hash" description:"compute the DowsHash of a 32-byte preimage"`

	NextBits struct {
		Network      string `long:"net" choice:"main" choice:"test" choice:"regtest" default:"main" description:"network whose parameters to use"`
		TipHeight    int32  `long:"tip-height" required:"true" description:"height of the synthetic ancestor chain's tip"`
		TipBits      string `long:"tip-bits" required:"true" description:"hex-encoded compact nBits of the tip"`
		Spacing      int64  `long:"spacing" description:"seconds between synthetic blocks (defaults to the network's target spacing)"`
		CandidateGap int64  `long:"candidate-gap" description:"extra seconds, beyond one spacing, that the candidate block's timestamp is ahead of the tip"`
	} `command:"next-bits" description:"compute the next required nBits for a synthetic, evenly-spaced ancestor chain"`

	Mine struct {
		Network string `long:"net" choice:"main" choice:"test" choice:"regtest" default:"regtest" description:"network whose pow limit to mine against"`
		Workers uint32 `long:"workers" default:"4" description:"number of concurrent search workers"`
	} `command:"mine" description:"search for a nonce solving a synthetic header at the network's pow limit"`
}

func netParams(name string) *chaincfg.Params {
	switch name {
	case "test":
		return &chaincfg.TestNetParams
	case "regtest":
		return &chaincfg.RegressionNetParams
	default:
		return &chaincfg.MainNetParams
	}
}

func runHash(opts *options) error {
	raw, err := hex.DecodeString(opts.Hash.Preimage)
	if err != nil {
		return fmt.Errorf("decoding preimage: %w", err)
	}
	if len(raw) != chainhash.HashSize {
		return fmt.Errorf("preimage must be exactly %d bytes (%d hex chars), got %d bytes",
			chainhash.HashSize, chainhash.HashSize*2, len(raw))
	}
	var in chainhash.Hash
	copy(in[:], raw)

	out := dowshash.Hash(in)
	fmt.Println(out.String())
	return nil
}

func runNextBits(opts *options) error {
	params := netParams(opts.NextBits.Network)

	bitsRaw, err := hex.DecodeString(opts.NextBits.TipBits)
	if err != nil || len(bitsRaw) != 4 {
		return fmt.Errorf("tip-bits must be 8 hex chars (4 bytes)")
	}
	tipBits := uint32(bitsRaw[0])<<24 | uint32(bitsRaw[1])<<16 | uint32(bitsRaw[2])<<8 | uint32(bitsRaw[3])

	spacing := opts.NextBits.Spacing
	if spacing == 0 {
		spacing = int64(params.TargetSpacing / time.Second)
	}

	var parent *blockchain.BlockIndexEntry
	var tip *blockchain.BlockIndexEntry
	for h := int32(0); h <= opts.NextBits.TipHeight; h++ {
		tip = blockchain.NewBlockIndexEntry(h, int64(h)*spacing, tipBits, parent)
		parent = tip
	}

	candidateTime := tip.Time() + spacing + opts.NextBits.CandidateGap
	next := blockchain.GetNextWorkRequired(tip, candidateTime, params)
	fmt.Printf("%08x\n", next)
	return nil
}

func runMine(opts *options) error {
	params := netParams(opts.Mine.Network)

	header := &wire.BlockHeader{
		Version:   1,
		Timestamp: time.Now(),
		Bits:      params.PowLimitBits,
	}

	m := dowsminer.New()
	quit := make(chan struct{})
	if !m.Solve(header, params, opts.Mine.Workers, quit) {
		return fmt.Errorf("no solution found")
	}

	hash, err := dowsminer.HeaderPoWHash(header)
	if err != nil {
		return err
	}

	fmt.Printf("nonce=%d hash=%s\n", header.Nonce, hash.String())
	return nil
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		switch parser.Active.Name {
		case "hash":
			return runHash(&opts)
		case "next-bits":
			return runNextBits(&opts)
		case "mine":
			return runMine(&opts)
		default:
			return fmt.Errorf("unknown command %q", parser.Active.Name)
		}
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
