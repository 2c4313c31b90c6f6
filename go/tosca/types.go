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

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Address represents the 160-bit (20 bytes) address of an account.
type Address [20]byte

// Hash represents the 256-bit (32 bytes) hash of a code, a block, a topic
// or similar sequence of cryptographic summary information.
type Hash [32]byte

// Data represents the input or output of contract invocations.
type Data []byte

// Code represents the byte-code of a contract.
type Code []byte

// Gas represents the type used to represent the Gas values.
type Gas int64

// AccessStatus is an enum utilized to indicate cold and warm account or
// storage slot accesses.
type AccessStatus bool

const (
	ColdAccess AccessStatus = false
	WarmAccess AccessStatus = true
)

func (a Address) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return hexutil.Bytes(a[:]).MarshalText()
}

func (a *Address) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Address", input, a[:])
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

func (h *Hash) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash", input, h[:])
}

func (d Data) MarshalText() ([]byte, error) {
	return hexutil.Bytes(d).MarshalText()
}

func (d *Data) UnmarshalText(input []byte) error {
	return (*hexutil.Bytes)(d).UnmarshalText(input)
}

func (c Code) MarshalText() ([]byte, error) {
	return hexutil.Bytes(c).MarshalText()
}

func (c *Code) UnmarshalText(input []byte) error {
	return (*hexutil.Bytes)(c).UnmarshalText(input)
}
