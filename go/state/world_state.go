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

//go:generate mockgen -source world_state.go -destination world_state_mock.go -package state

// WorldState is the subset of the transaction state needed to apply value
// transfers and self-destructs. Modifications are expected to be buffered by
// the implementation and reverted as a whole if the enclosing call fails.
type WorldState interface {
	AccountExists(tosca.Address) bool

	GetBalance(tosca.Address) tosca.Value
	SetBalance(tosca.Address, tosca.Value)

	AccessAccount(tosca.Address) tosca.AccessStatus

	HasSelfDestructed(tosca.Address) bool
	SelfDestruct(addr tosca.Address, beneficiary tosca.Address) bool
}
