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

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func withCapturedOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prevOut := base.Out
	prevLvl := base.Level
	base.SetOutput(&buf)
	defer func() {
		base.SetOutput(prevOut)
		base.SetLevel(prevLvl)
	}()
	fn()
	return buf.String()
}

func TestPackageLevelLoggingIncludesFields(t *testing.T) {
	SetLevel(LvlDebug)
	out := withCapturedOutput(t, func() {
		Debug("stepped opcode", "pc", 4, "op", "ADD")
	})
	require.Contains(t, out, "stepped opcode")
	require.Contains(t, out, "pc=4")
	require.Contains(t, out, "op=ADD")
}

func TestChildLoggerCarriesContext(t *testing.T) {
	SetLevel(LvlInfo)
	out := withCapturedOutput(t, func() {
		child := New("run_id", "abc-123")
		child.Info("execute finished", "gas_used", 42)
	})
	require.Contains(t, out, "run_id=abc-123")
	require.Contains(t, out, "gas_used=42")
	require.Contains(t, out, "execute finished")
}

func TestSetLevelSuppressesBelowThreshold(t *testing.T) {
	SetLevel(LvlWarn)
	out := withCapturedOutput(t, func() {
		Debug("should not appear")
		Warn("should appear")
	})
	require.NotContains(t, out, "should not appear")
	require.Contains(t, out, "should appear")
	SetLevel(LvlInfo)
}

func TestRootReturnsUsableLogger(t *testing.T) {
	require.NotNil(t, Root())
}
