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

// Limits collects the construction-time parameters the reference
// implementation hard-codes (spec §9 REDESIGN FLAG: "these should be
// construction parameters, but the current opcodes' base costs are
// calibrated to the 200 000 budget" — callers that change GasLimit
// should expect the gas table to no longer be perfectly calibrated).
type Limits struct {
	GasLimit         uint64
	StackCapacity    int
	FrameCapacity    int
	GasCheckpointCap int
	InitialMemory    int
}

// DefaultLimits reproduces the reference constants.
func DefaultLimits() Limits {
	return Limits{
		GasLimit:         200_000,
		StackCapacity:    64,
		FrameCapacity:    8,
		GasCheckpointCap: 16,
		InitialMemory:    1024,
	}
}

// Config bundles a Tracer and LogSink with whatever future VM-level
// toggles are needed, following the teacher's pattern of a separate
// Config type distinct from Limits (internal/vm/interface.go's `Config()`
// accessor in the teacher repo).
type Config struct {
	Tracer  Tracer
	LogSink LogSink
}
