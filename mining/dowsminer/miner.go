// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dowsminer

import (
	"sync"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/dowscoin/dows/blockchain"
	"github.com/dowscoin/dows/chaincfg"
)

const (
	// maxNonce is the maximum value a nonce can be in a block header.
	maxNonce = ^uint32(0)

	// hpsUpdateSecs is the number of seconds to wait in between each
	// update to the hashes per second monitor.
	hpsUpdateSecs = 10

	// hashUpdateSecs is the number of seconds each worker waits in
	// between notifying the speed monitor with how many hashes have been
	// completed, to reduce cross-worker synchronization.
	hashUpdateSecs = 15
)

// Miner searches for a nonce that solves a candidate block header using
// DowsHash, spreading the nonce space across a configurable number of
// worker goroutines. It owns no chain state: callers are responsible for
// producing a fully-formed header (everything but Nonce) and for deciding
// what to do with a solved one.
type Miner struct {
	wg               sync.WaitGroup
	updateHashes     chan uint64
	speedMonitorQuit chan struct{}
	mutex            sync.Mutex
	started          bool
}

// New returns an idle Miner, ready to have Solve called on it.
func New() *Miner {
	return &Miner{
		updateHashes:     make(chan uint64),
		speedMonitorQuit: make(chan struct{}),
	}
}

// speedMonitor tracks the combined hash rate across all active workers.
// It must be run as a goroutine, and only while at least one call to
// Solve is in flight.
func (m *Miner) speedMonitor(quit <-chan struct{}) {
	log.Tracef("dowsminer speed monitor started")

	var hashesPerSec int64
	var totalHashes uint64
	ticker := time.NewTicker(time.Second * hpsUpdateSecs)
	defer ticker.Stop()

out:
	for {
		select {
		case n := <-m.updateHashes:
			totalHashes += n

		case <-ticker.C:
			cur := int64(totalHashes / hpsUpdateSecs)
			if cur != hashesPerSec {
				log.Infof("Hash speed: %d kilohashes/s", cur/1000)
				hashesPerSec = cur
			}
			totalHashes = 0

		case <-quit:
			break out
		}
	}

	log.Tracef("dowsminer speed monitor done")
}

// searchRange hashes header copies with nonces start, start+stride,
// start+2*stride, ... until either a solution is found, the nonce space
// wraps, or quit fires. A successful solution is sent once on found unless
// quit fires first; Solve gives found one buffer slot per worker and reads
// at most one value from it.
func (m *Miner) searchRange(header wire.BlockHeader, params *chaincfg.Params, start, stride uint32, quit <-chan struct{}, found chan<- uint32) {
	defer m.wg.Done()

	ticker := time.NewTicker(time.Second * hashUpdateSecs)
	defer ticker.Stop()

	var hashesCompleted uint64
	nonce := start
	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			m.updateHashes <- hashesCompleted
			hashesCompleted = 0
		default:
		}

		header.Nonce = nonce
		hash, err := HeaderPoWHash(&header)
		hashesCompleted++
		if err != nil {
			log.Errorf("failed to hash candidate header: %v", err)
			return
		}
		if blockchain.CheckProofOfWork(hash, header.Bits, params) {
			select {
			case found <- nonce:
			case <-quit:
			}
			return
		}

		next := nonce + stride
		if next < nonce {
			// Wrapped around the nonce space without a solution.
			return
		}
		nonce = next
	}
}

// Solve searches the full 32-bit nonce space of header across numWorkers
// goroutines and reports whether a solution was found. On success,
// header.Nonce is updated in place to the winning value. Solve blocks
// until a solution is found, the nonce space is exhausted, or quit fires.
func (m *Miner) Solve(header *wire.BlockHeader, params *chaincfg.Params, numWorkers uint32, quit <-chan struct{}) bool {
	if numWorkers == 0 {
		numWorkers = 1
	}

	m.mutex.Lock()
	m.started = true
	m.mutex.Unlock()
	defer func() {
		m.mutex.Lock()
		m.started = false
		m.mutex.Unlock()
	}()

	workerQuit := make(chan struct{})
	defer close(workerQuit)

	monitorQuit := make(chan struct{})
	go m.speedMonitor(monitorQuit)
	defer close(monitorQuit)

	found := make(chan uint32, numWorkers)
	m.wg.Add(int(numWorkers))
	for w := uint32(0); w < numWorkers; w++ {
		go m.searchRange(*header, params, w, numWorkers, workerQuit, found)
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case nonce := <-found:
		header.Nonce = nonce
		return true
	case <-done:
		return false
	case <-quit:
		return false
	}
}

// IsMining reports whether a call to Solve is currently in progress.
func (m *Miner) IsMining() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.started
}
