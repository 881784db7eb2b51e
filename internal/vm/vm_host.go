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

import "fmt"

// execHost handles the 0x4* host/account opcodes (spec §4.9). Every op
// that indexes into the account view charges the cold/warm account
// access surcharge from spec §4.3 on top of its flat base cost, the
// first time within an execute call an index is touched paying full
// price and every later touch the warm discount.
func (vm *VM) execHost(op OpCode) error {
	switch op {
	case Transfer:
		amount, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		destIdx, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		srcIdx, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		return vm.transfer(int(srcIdx), int(destIdx), uint64(amount))

	case SPLTransfer, CPI:
		// Reserved: both are stubs that fail with invalid-instruction-data
		// (spec §4.9, §9; original source's core.rs returns
		// ProgramError::InvalidInstructionData for both arms).
		return ErrInvalidInstruction

	case Log:
		v, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		if vm.logSink != nil {
			vm.logSink.Log(fmt.Sprintf("%d", uint64(v)))
		}
		return nil

	case GetBalance:
		idx, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		acct, err := vm.touchAccount(int(idx))
		if err != nil {
			return err
		}
		return vm.stack.Push(Value(*acct.Lamports))

	case GetOwner:
		idx, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		acct, err := vm.touchAccount(int(idx))
		if err != nil {
			return err
		}
		return vm.stack.Push(Value(leToU64(acct.Owner[:8])))

	case IsWritable:
		idx, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		acct, err := vm.touchAccount(int(idx))
		if err != nil {
			return err
		}
		return vm.stack.Push(boolValue(acct.Writable))

	case IsSigner:
		idx, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		acct, err := vm.touchAccount(int(idx))
		if err != nil {
			return err
		}
		return vm.stack.Push(boolValue(acct.Signer))
	}
	return ErrInvalidInstruction
}

// touchAccount resolves index against the account view, charging the
// cold/warm surcharge along the way.
func (vm *VM) touchAccount(index int) (*Account, error) {
	cold := vm.access.touch(index)
	if err := vm.gas.Consume(AccountAccessCost(cold)); err != nil {
		return nil, err
	}
	acct, ok := vm.accounts.Account(index)
	if !ok {
		return nil, ErrInvalidAccount
	}
	return acct, nil
}

// transfer moves amount lamports from src to dest, failing with
// ErrInvalidAccount for an out-of-range index or an unwritable account,
// and ErrArithmeticOverflow for a source underflow or destination
// overflow (spec §4.9, §7 item 6).
func (vm *VM) transfer(src, dest int, amount uint64) error {
	srcAcct, err := vm.touchAccount(src)
	if err != nil {
		return err
	}
	destAcct, err := vm.touchAccount(dest)
	if err != nil {
		return err
	}
	if !destAcct.Writable || !srcAcct.Writable {
		return fmt.Errorf("%w: account not writable", ErrInvalidAccount)
	}
	newSrc, ok := Value(*srcAcct.Lamports).CheckedSub(Value(amount))
	if !ok {
		return fmt.Errorf("%w: lamport underflow", ErrArithmeticOverflow)
	}
	newDest, ok := Value(*destAcct.Lamports).CheckedAdd(Value(amount))
	if !ok {
		return fmt.Errorf("%w: lamport overflow", ErrArithmeticOverflow)
	}
	*srcAcct.Lamports = uint64(newSrc)
	*destAcct.Lamports = uint64(newDest)
	return nil
}

func boolValue(b bool) Value {
	if b {
		return 1
	}
	return 0
}
