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

	"github.com/holiman/uint256"
)

// Value represents an amount of chain currency, typically wei. It is an
// unsigned 256-bit integer in big-endian byte order.
type Value [32]byte

// NewValue creates a value from up to four 64-bit words, most significant
// first. NewValue() is zero, NewValue(x) is x.
func NewValue(args ...uint64) (result Value) {
	if len(args) > 4 {
		panic(fmt.Sprintf("too many arguments for NewValue: %d", len(args)))
	}
	offset := 4 - len(args)
	var words uint256.Int
	for i, arg := range args {
		words[3-(offset+i)] = arg
	}
	return ValueFromUint256(&words)
}

func ValueFromUint256(value *uint256.Int) (result Value) {
	if value == nil {
		return result
	}
	return Value(value.Bytes32())
}

func (v Value) ToUint256() *uint256.Int {
	return new(uint256.Int).SetBytes32(v[:])
}

// Add returns a + b, wrapping around on overflow.
func Add(a, b Value) Value {
	return ValueFromUint256(new(uint256.Int).Add(a.ToUint256(), b.ToUint256()))
}

// Sub returns a - b, wrapping around on underflow.
func Sub(a, b Value) Value {
	return ValueFromUint256(new(uint256.Int).Sub(a.ToUint256(), b.ToUint256()))
}

// Cmp returns -1 if v < o, 0 if v == o, and 1 if v > o.
func (v Value) Cmp(o Value) int {
	return v.ToUint256().Cmp(o.ToUint256())
}

func (v Value) IsZero() bool {
	return v == Value{}
}

func (v Value) String() string {
	return v.ToUint256().Dec()
}

// MarshalText encodes the value as a minimal 0x-prefixed hex number.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.ToUint256().Hex()), nil
}

func (v *Value) UnmarshalText(input []byte) error {
	parsed, err := uint256.FromHex(string(input))
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", input, err)
	}
	*v = ValueFromUint256(parsed)
	return nil
}
