// Copyright 2022-2026 The lessvm-go Authors
// This file is part of the lessvm-go library.
//
// The lessvm-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lessvm-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lessvm-go library. If not, see <http://www.gnu.org/licenses/>.

package vm

// Gas is the consumable meter with a checkpoint stack (spec §3, §4.3).
// Checkpoints are reserved for future speculative sub-calls; the core
// dispatch loop does not checkpoint automatically per opcode.
type Gas struct {
	remaining      uint64
	lastCheckpoint uint64
	checkpoints    []uint64
	checkpointCap  int
}

// NewGas builds a meter with the given limit and checkpoint-stack
// capacity (default 16, spec §3).
func NewGas(limit uint64, checkpointCap int) *Gas {
	if checkpointCap <= 0 {
		checkpointCap = 16
	}
	return &Gas{
		remaining:      limit,
		lastCheckpoint: limit,
		checkpoints:    make([]uint64, 0, checkpointCap),
		checkpointCap:  checkpointCap,
	}
}

// Remaining returns the remaining gas.
func (g *Gas) Remaining() uint64 { return g.remaining }

// Used returns lastCheckpoint - remaining.
func (g *Gas) Used() uint64 { return g.lastCheckpoint - g.remaining }

// Consume subtracts n from remaining. If n exceeds remaining it fails
// with ErrOutOfGas and leaves remaining unchanged.
func (g *Gas) Consume(n uint64) error {
	if n > g.remaining {
		return ErrOutOfGas
	}
	g.remaining -= n
	return nil
}

// Checkpoint pushes the current remaining value.
func (g *Gas) Checkpoint() error {
	if len(g.checkpoints) >= g.checkpointCap {
		return ErrOutOfGas
	}
	g.checkpoints = append(g.checkpoints, g.remaining)
	return nil
}

// RevertToCheckpoint pops the most recent checkpoint and restores
// remaining to it.
func (g *Gas) RevertToCheckpoint() error {
	if len(g.checkpoints) == 0 {
		return ErrOutOfGas
	}
	last := len(g.checkpoints) - 1
	g.remaining = g.checkpoints[last]
	g.checkpoints = g.checkpoints[:last]
	return nil
}

// CommitCheckpoint discards the most recent checkpoint and advances
// lastCheckpoint to the current remaining value.
func (g *Gas) CommitCheckpoint() error {
	if len(g.checkpoints) == 0 {
		return ErrOutOfGas
	}
	g.checkpoints = g.checkpoints[:len(g.checkpoints)-1]
	g.lastCheckpoint = g.remaining
	return nil
}

// Reset restores remaining to lastCheckpoint and clears the checkpoint
// stack.
func (g *Gas) Reset() {
	g.remaining = g.lastCheckpoint
	g.checkpoints = g.checkpoints[:0]
}

// Auxiliary host-facing cost helpers (spec §4.3).
const (
	GasColdAccountAccess = 2600
	GasWarmAccountAccess = 100

	GasColdStorageLoad = 2100
	GasWarmStorageLoad = 100

	GasStorageNoChange        = 100
	GasStorageZeroToNonZero   = 20000
	GasStorageNonZeroToZero   = 5000
	GasStorageNonZeroToDiffer = 5000
)

// AccountAccessCost returns the cold/warm account access charge.
func AccountAccessCost(cold bool) uint64 {
	if cold {
		return GasColdAccountAccess
	}
	return GasWarmAccountAccess
}

// StorageLoadCost returns the cold/warm storage load charge.
func StorageLoadCost(cold bool) uint64 {
	if cold {
		return GasColdStorageLoad
	}
	return GasWarmStorageLoad
}

// StorageStoreCost returns the charge for writing newValue over
// currentValue.
func StorageStoreCost(current, newValue uint64) uint64 {
	switch {
	case current == newValue:
		return GasStorageNoChange
	case current == 0:
		return GasStorageZeroToNonZero
	case newValue == 0:
		return GasStorageNonZeroToZero
	default:
		return GasStorageNonZeroToDiffer
	}
}
