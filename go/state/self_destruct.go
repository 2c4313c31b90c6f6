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

import "github.com/panoptisDev/frames/go/tosca"

// SelfDestruct destructs the account at address, moves its balance to the
// beneficiary, and reports the observations the interpreter needs for
// charging gas. The access and existence flags are captured before any
// balance is moved.
func SelfDestruct(state WorldState, address tosca.Address, beneficiary tosca.Address) tosca.SelfDestructResult {
	result := tosca.SelfDestructResult{
		IsCold:              state.AccessAccount(beneficiary) == tosca.ColdAccess,
		TargetExists:        state.AccountExists(beneficiary),
		PreviouslyDestroyed: state.HasSelfDestructed(address),
	}

	balance := state.GetBalance(address)
	result.HadValue = !balance.IsZero()

	if result.HadValue {
		state.SetBalance(address, tosca.Value{})
		state.SetBalance(beneficiary, tosca.Add(state.GetBalance(beneficiary), balance))
	}
	state.SelfDestruct(address, beneficiary)
	return result
}
