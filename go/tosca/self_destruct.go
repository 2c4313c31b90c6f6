// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tosca

// SelfDestructResult summarizes the outcome of a self-destruct as reported by
// the state layer, such that the interpreter can charge gas and account for
// refunds. The zero value describes a no-op.
type SelfDestructResult struct {
	HadValue            bool // the destructed account held a non-zero balance
	TargetExists        bool // the beneficiary existed before the operation
	IsCold              bool // the beneficiary was accessed for the first time in this transaction
	PreviouslyDestroyed bool // the account was already destructed in this transaction
}

// CreditsBeneficiary reports whether the beneficiary received a balance that
// was not already credited by an earlier self-destruct in this transaction.
func (r SelfDestructResult) CreditsBeneficiary() bool {
	return r.HadValue && !r.PreviouslyDestroyed
}
