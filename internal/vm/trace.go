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

import "github.com/lessvm/lessvm-go/log"

// ExecutionTrace is the per-step diagnostic record emitted before an
// opcode's side effects run (spec §3, §4.10).
type ExecutionTrace struct {
	PC            int
	Op            OpCode
	GasUsed       uint64
	GasRemaining  uint64
	StackDepth    int
	MemorySize    int
}

// Tracer consumes one ExecutionTrace per charged opcode.
type Tracer interface {
	TraceExecution(t ExecutionTrace)
}

// NoopTracer is the default sink: it discards every trace event.
type NoopTracer struct{}

func (NoopTracer) TraceExecution(ExecutionTrace) {}

// LogTracer emits one structured Debug-level log line per step through
// a log.Logger, matching the teacher's leveled-logging idiom.
type LogTracer struct {
	Logger log.Logger
}

// NewLogTracer builds a LogTracer over the given logger. A nil logger
// falls back to log.Root().
func NewLogTracer(logger log.Logger) *LogTracer {
	if logger == nil {
		logger = log.Root()
	}
	return &LogTracer{Logger: logger}
}

func (t *LogTracer) TraceExecution(tr ExecutionTrace) {
	t.Logger.Debug("vm step",
		"pc", tr.PC,
		"op", tr.Op.String(),
		"gas_used", tr.GasUsed,
		"gas_remaining", tr.GasRemaining,
		"stack_depth", tr.StackDepth,
		"memory_size", tr.MemorySize,
	)
}
