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

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Account is the typed view the host exposes of one account: ownership,
// signer/writable bits, and a mutable lamport balance (spec §1).
type Account struct {
	Owner    [32]byte
	Signer   bool
	Writable bool
	Lamports *uint64
}

// AccountView is the ordered, borrowed-read-only (except for lamport
// mutation through Account.Lamports) view of accounts the host passes
// into execute (spec §1, §5).
type AccountView interface {
	Len() int
	Account(index int) (*Account, bool)
}

// SliceAccountView is the straightforward []*Account-backed AccountView
// a host driver or test constructs.
type SliceAccountView []*Account

func (v SliceAccountView) Len() int { return len(v) }

func (v SliceAccountView) Account(index int) (*Account, bool) {
	if index < 0 || index >= len(v) {
		return nil, false
	}
	return v[index], true
}

// LogSink receives the text records Log opcodes emit (spec §4.9).
type LogSink interface {
	Log(message string)
}

// LogSinkFunc adapts a function to LogSink.
type LogSinkFunc func(string)

func (f LogSinkFunc) Log(message string) { f(message) }

// accessList tracks which account indices have been touched so far in
// the current execution, distinguishing the cold first touch (full
// price) from subsequent warm touches (discounted), per the account
// access cost helpers in spec §4.3. Bounded by an LRU so a pathological
// bytecode that indexes many accounts cannot grow this unbounded.
type accessList struct {
	warm *lru.Cache[int, struct{}]
}

func newAccessList() *accessList {
	c, _ := lru.New[int, struct{}](1024)
	return &accessList{warm: c}
}

// touch marks index as accessed and reports whether this was the cold
// (first) access.
func (a *accessList) touch(index int) (cold bool) {
	if a.warm.Contains(index) {
		a.warm.Get(index) // refresh recency
		return false
	}
	a.warm.Add(index, struct{}{})
	return true
}

func (a *accessList) reset() {
	a.warm.Purge()
}
