// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"fmt"

	"github.com/panoptisDev/frames/go/tosca"
)

const (
	ErrInsufficientBalance = tosca.ConstError("insufficient balance for value transfer")
	ErrBalanceOverflow     = tosca.ConstError("value transfer overflows target balance")
)

// CanTransfer reports whether the given transfer could be applied to the
// state without an underflow of the source or an overflow of the target.
func CanTransfer(state WorldState, transfer tosca.Transfer) bool {
	return checkTransfer(state, transfer) == nil
}

func checkTransfer(state WorldState, transfer tosca.Transfer) error {
	if transfer.IsZero() {
		return nil
	}

	sourceBalance := state.GetBalance(transfer.Source)
	if sourceBalance.Cmp(transfer.Value) < 0 {
		return ErrInsufficientBalance
	}

	if transfer.Source == transfer.Target {
		return nil
	}

	targetBalance := state.GetBalance(transfer.Target)
	updated := tosca.Add(targetBalance, transfer.Value)
	if updated.Cmp(targetBalance) < 0 || updated.Cmp(transfer.Value) < 0 {
		return ErrBalanceOverflow
	}
	return nil
}

// ApplyTransfer moves the value of the transfer from its source to its
// target. Either both balances are updated or, if the transfer can not be
// applied, none is and an error is returned.
func ApplyTransfer(state WorldState, transfer tosca.Transfer) error {
	if err := checkTransfer(state, transfer); err != nil {
		return fmt.Errorf("transfer of %v from %v to %v: %w",
			transfer.Value, transfer.Source, transfer.Target, err)
	}
	if transfer.IsZero() || transfer.Source == transfer.Target {
		return nil
	}

	sourceBalance := state.GetBalance(transfer.Source)
	targetBalance := state.GetBalance(transfer.Target)
	state.SetBalance(transfer.Source, tosca.Sub(sourceBalance, transfer.Value))
	state.SetBalance(transfer.Target, tosca.Add(targetBalance, transfer.Value))
	return nil
}
