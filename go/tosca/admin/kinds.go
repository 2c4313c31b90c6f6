// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package admin classifies administrative requests, which are handled outside
// of the EVM, by their single-byte kind code.
package admin

import (
	"fmt"

	"github.com/panoptisDev/frames/go/tosca"
)

const errUnknownKindName = tosca.ConstError("unknown kind name")

// ConfigKind identifies a configuration request. The ordinals are part of
// the wire format and must never be renumbered.
type ConfigKind uint8

const (
	MultisigAddress ConfigKind = iota + 1
	RequiredGas
	SetBalance
	DumpState
	UnknownConfig
)

// ConfigKindFromUint8 decodes a configuration kind. Every byte maps to a kind,
// unassigned codes (including 0) map to UnknownConfig.
func ConfigKindFromUint8(value uint8) ConfigKind {
	switch value {
	case 1:
		return MultisigAddress
	case 2:
		return RequiredGas
	case 3:
		return SetBalance
	case 4:
		return DumpState
	default:
		return UnknownConfig
	}
}

func (k ConfigKind) Uint8() uint8 {
	return uint8(k)
}

func (k ConfigKind) String() string {
	switch k {
	case MultisigAddress:
		return "MultisigAddress"
	case RequiredGas:
		return "RequiredGas"
	case SetBalance:
		return "SetBalance"
	case DumpState:
		return "DumpState"
	default:
		return "Unknown"
	}
}

func (k ConfigKind) MarshalText() ([]byte, error) {
	return []byte(ConfigKindFromUint8(uint8(k)).String()), nil
}

func (k *ConfigKind) UnmarshalText(input []byte) error {
	for code := MultisigAddress; code <= UnknownConfig; code++ {
		if code.String() == string(input) {
			*k = code
			return nil
		}
	}
	return fmt.Errorf("%w: config kind %q", errUnknownKindName, input)
}

// AdminCallKind identifies an administrative call. The ordinals are part of
// the wire format and must never be renumbered.
type AdminCallKind uint8

const (
	EmergencyStop AdminCallKind = iota + 1
	ReloadRuntimeConfig
	Mint
	Burn
	UnknownAdminCall
)

// AdminCallKindFromUint8 decodes an administrative call kind. Every byte maps
// to a kind, unassigned codes (including 0) map to UnknownAdminCall.
func AdminCallKindFromUint8(value uint8) AdminCallKind {
	switch value {
	case 1:
		return EmergencyStop
	case 2:
		return ReloadRuntimeConfig
	case 3:
		return Mint
	case 4:
		return Burn
	default:
		return UnknownAdminCall
	}
}

func (k AdminCallKind) Uint8() uint8 {
	return uint8(k)
}

func (k AdminCallKind) String() string {
	switch k {
	case EmergencyStop:
		return "EmergencyStop"
	case ReloadRuntimeConfig:
		return "ReloadRuntimeConfig"
	case Mint:
		return "Mint"
	case Burn:
		return "Burn"
	default:
		return "Unknown"
	}
}

func (k AdminCallKind) MarshalText() ([]byte, error) {
	return []byte(AdminCallKindFromUint8(uint8(k)).String()), nil
}

func (k *AdminCallKind) UnmarshalText(input []byte) error {
	for code := EmergencyStop; code <= UnknownAdminCall; code++ {
		if code.String() == string(input) {
			*k = code
			return nil
		}
	}
	return fmt.Errorf("%w: admin call kind %q", errUnknownKindName, input)
}
