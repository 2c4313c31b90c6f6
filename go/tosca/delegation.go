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

import "bytes"

var delegationPrefix = []byte{0xef, 0x01, 0x00}

// ParseDelegationDesignator returns the delegate from a code segment
// containing a delegation designator, if any. If the code is not a
// delegation designator, the second result is false and the address
// shall be ignored.
// see: https://eips.ethereum.org/EIPS/eip-7702
func ParseDelegationDesignator(code Code) (Address, bool) {
	if len(code) != len(delegationPrefix)+len(Address{}) || !bytes.HasPrefix(code, delegationPrefix) {
		return Address{}, false
	}
	var res Address
	copy(res[:], code[len(delegationPrefix):])
	return res, true
}

// NewDelegationDesignator creates a new delegation designator for the given address.
func NewDelegationDesignator(address Address) Code {
	return append(bytes.Clone(delegationPrefix), address[:]...)
}

// ResolveDelegation returns the context with its code address redirected to
// the delegate if the code loaded for it is a delegation designator.
func (c CallContext) ResolveDelegation(code Code) CallContext {
	if delegate, ok := ParseDelegationDesignator(code); ok {
		c.CodeAddress = delegate
	}
	return c
}
