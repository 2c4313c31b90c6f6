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

import "fmt"

// CallScheme is an enum enabling the differentiation of the different types
// of message calls supported in the EVM. The ordinals are part of the
// interface consumed by embedding hosts and must not be changed.
type CallScheme uint8

const (
	Call CallScheme = iota
	CallCode
	DelegateCall
	StaticCall
)

func (s CallScheme) String() string {
	switch s {
	case Call:
		return "Call"
	case CallCode:
		return "CallCode"
	case DelegateCall:
		return "DelegateCall"
	case StaticCall:
		return "StaticCall"
	default:
		return fmt.Sprintf("CallScheme(%d)", uint8(s))
	}
}

func (s CallScheme) MarshalText() ([]byte, error) {
	if s > StaticCall {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCallScheme, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *CallScheme) UnmarshalText(input []byte) error {
	for candidate := Call; candidate <= StaticCall; candidate++ {
		if candidate.String() == string(input) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCallScheme, input)
}

// CallContext describes who is executing, on behalf of whom, and under which
// call scheme. The zero value is the default context: all addresses zero, no
// apparent value, and the Call scheme.
type CallContext struct {
	Address       Address    // the account whose storage and balance are used
	Caller        Address    // the immediate caller of the frame
	CodeAddress   Address    // the account the executed code was loaded from
	ApparentValue Value      // the value observed by the callee (CALLVALUE)
	Scheme        CallScheme // the scheme used for the call
}

// DelegatesCode reports whether the executed code is borrowed from another
// account, as is the case for CALLCODE and DELEGATECALL.
func (c CallContext) DelegatesCode() bool {
	return c.Scheme == CallCode || c.Scheme == DelegateCall
}
