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
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

// Transfer describes a movement of value from source to target that is to be
// applied by the state layer either completely or not at all.
type Transfer struct {
	Source Address
	Target Address
	Value  Value
}

func (t Transfer) IsZero() bool {
	return t.Value.IsZero()
}

// CallInputs is the normalized request an interpreter frame receives to
// execute a message call. Instances are assembled once per call attempt and
// must not be modified after being handed to the interpreter.
type CallInputs struct {
	Contract Address     // the target of the call
	Transfer Transfer    // the value transfer accompanying the call, if any
	Input    Data        // the call data
	GasLimit Gas         // the gas made available to the callee
	Context  CallContext // the context the callee is executed in
	IsStatic bool        // true if no state modifications are permitted
}

// NewCallInputs validates the given inputs and returns a copy owning its
// call data. Invalid combinations of scheme, static flag, and transfer value
// are reported as errors.
func NewCallInputs(inputs CallInputs) (CallInputs, error) {
	if err := inputs.Validate(); err != nil {
		return CallInputs{}, fmt.Errorf("invalid call inputs: %w", err)
	}
	inputs.Input = slices.Clone(inputs.Input)
	return inputs, nil
}

// Validate checks the invariants a call frame relies on: a StaticCall scheme
// implies the static flag, and a static call never moves value.
func (c CallInputs) Validate() error {
	if c.Context.Scheme > StaticCall {
		return fmt.Errorf("%w: %d", ErrUnknownCallScheme, uint8(c.Context.Scheme))
	}
	if c.GasLimit < 0 {
		return ErrNegativeGasLimit
	}
	if c.Context.Scheme == StaticCall && !c.IsStatic {
		return ErrStaticFlagMissing
	}
	if c.IsStatic && !c.Transfer.IsZero() {
		return fmt.Errorf("%w: %v", ErrStaticValueTransfer, c.Transfer.Value)
	}
	return nil
}

// CheckGasLimit verifies that the gas requested for the call does not exceed
// the gas left in the parent frame.
func (c CallInputs) CheckGasLimit(parentGasLeft Gas) error {
	return checkGasLimit(c.GasLimit, parentGasLeft)
}

// CreateKind selects how the address of a newly created contract is derived.
type CreateKind uint8

const (
	Create  CreateKind = iota // address derived from the sender and its nonce
	Create2                   // address derived from the sender, a salt, and the init code
)

func (k CreateKind) String() string {
	switch k {
	case Create:
		return "Create"
	case Create2:
		return "Create2"
	default:
		return fmt.Sprintf("CreateKind(%d)", uint8(k))
	}
}

func (k CreateKind) MarshalText() ([]byte, error) {
	if k > Create2 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCreateKind, uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *CreateKind) UnmarshalText(input []byte) error {
	switch string(input) {
	case "Create":
		*k = Create
	case "Create2":
		*k = Create2
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCreateKind, input)
	}
	return nil
}

// CreateScheme is the creation scheme of a contract. The salt is only
// relevant for Create2.
type CreateScheme struct {
	Kind CreateKind
	Salt Hash
}

func SequentialCreate() CreateScheme {
	return CreateScheme{Kind: Create}
}

func SaltedCreate(salt Hash) CreateScheme {
	return CreateScheme{Kind: Create2, Salt: salt}
}

// CreateInputs is the normalized request an interpreter frame receives to
// execute a contract creation. There is no static flag: creations are never
// permitted in a static context, which NewCreateInputs enforces.
type CreateInputs struct {
	Caller   Address
	Scheme   CreateScheme
	Value    Value
	InitCode Code
	GasLimit Gas
}

// NewCreateInputs validates the given inputs for a creation requested from a
// context with the given static flag and returns a copy owning its init code.
func NewCreateInputs(inputs CreateInputs, static bool) (CreateInputs, error) {
	if err := inputs.validate(static); err != nil {
		return CreateInputs{}, fmt.Errorf("invalid create inputs: %w", err)
	}
	inputs.InitCode = slices.Clone(inputs.InitCode)
	return inputs, nil
}

func (c CreateInputs) validate(static bool) error {
	if static {
		return ErrCreateInStaticContext
	}
	if c.Scheme.Kind > Create2 {
		return fmt.Errorf("%w: %d", ErrUnknownCreateKind, uint8(c.Scheme.Kind))
	}
	if c.GasLimit < 0 {
		return ErrNegativeGasLimit
	}
	return nil
}

// CheckGasLimit verifies that the gas requested for the creation does not
// exceed the gas left in the parent frame.
func (c CreateInputs) CheckGasLimit(parentGasLeft Gas) error {
	return checkGasLimit(c.GasLimit, parentGasLeft)
}

// InitCodeHash returns the Keccak256 hash of the init code.
func (c CreateInputs) InitCodeHash() Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(c.InitCode)
	var hash Hash
	hasher.Sum(hash[0:0])
	return hash
}

// CreatedAddress derives the address of the contract to be created, where
// nonce is the caller's nonce before it got incremented for this creation.
func (c CreateInputs) CreatedAddress(nonce uint64) Address {
	if c.Scheme.Kind == Create2 {
		initHash := c.InitCodeHash()
		return Address(crypto.CreateAddress2(
			common.Address(c.Caller),
			common.Hash(c.Scheme.Salt),
			initHash[:],
		))
	}
	return Address(crypto.CreateAddress(common.Address(c.Caller), nonce))
}

func checkGasLimit(limit, parentGasLeft Gas) error {
	if limit < 0 {
		return ErrNegativeGasLimit
	}
	if limit > parentGasLeft {
		return fmt.Errorf("%w: requested %d, available %d", ErrGasLimitExceedsParent, limit, parentGasLeft)
	}
	return nil
}
