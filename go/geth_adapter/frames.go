// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package geth_adapter

import (
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"
	"github.com/panoptisDev/frames/go/tosca"
)

const (
	errNotACallOpCode   = tosca.ConstError("not a call op-code")
	errNotACreateOpCode = tosca.ConstError("not a create op-code")
	errGasOverflow      = tosca.ConstError("gas exceeds supported range")
)

func CallSchemeFromOpCode(op vm.OpCode) (tosca.CallScheme, error) {
	switch op {
	case vm.CALL:
		return tosca.Call, nil
	case vm.CALLCODE:
		return tosca.CallCode, nil
	case vm.DELEGATECALL:
		return tosca.DelegateCall, nil
	case vm.STATICCALL:
		return tosca.StaticCall, nil
	}
	return 0, fmt.Errorf("%w: %v", errNotACallOpCode, op)
}

func OpCodeFromCallScheme(scheme tosca.CallScheme) (vm.OpCode, error) {
	switch scheme {
	case tosca.Call:
		return vm.CALL, nil
	case tosca.CallCode:
		return vm.CALLCODE, nil
	case tosca.DelegateCall:
		return vm.DELEGATECALL, nil
	case tosca.StaticCall:
		return vm.STATICCALL, nil
	}
	return 0, fmt.Errorf("%w: %d", tosca.ErrUnknownCallScheme, uint8(scheme))
}

func CreateKindFromOpCode(op vm.OpCode) (tosca.CreateKind, error) {
	switch op {
	case vm.CREATE:
		return tosca.Create, nil
	case vm.CREATE2:
		return tosca.Create2, nil
	}
	return 0, fmt.Errorf("%w: %v", errNotACreateOpCode, op)
}

// CallInputsFromOpCode assembles the inputs of a call instruction executed by
// the given frame. The context and transfer of the new frame are derived from
// the op-code: CALLCODE and DELEGATECALL run the target's code on the
// executing account, DELEGATECALL keeps caller and value of the current
// frame, and STATICCALL never transfers value.
func CallInputsFromOpCode(
	op vm.OpCode,
	frame tosca.CallContext,
	frameIsStatic bool,
	to common.Address,
	value *uint256.Int,
	input []byte,
	gas uint64,
) (tosca.CallInputs, error) {
	scheme, err := CallSchemeFromOpCode(op)
	if err != nil {
		return tosca.CallInputs{}, err
	}
	if gas > math.MaxInt64 {
		return tosca.CallInputs{}, fmt.Errorf("%w: %d", errGasOverflow, gas)
	}

	self := frame.Address
	target := tosca.Address(to)
	amount := tosca.ValueFromUint256(value)

	var context tosca.CallContext
	var transfer tosca.Transfer
	switch scheme {
	case tosca.Call:
		context = tosca.CallContext{Address: target, Caller: self, CodeAddress: target, ApparentValue: amount}
		transfer = tosca.Transfer{Source: self, Target: target, Value: amount}
	case tosca.CallCode:
		context = tosca.CallContext{Address: self, Caller: self, CodeAddress: target, ApparentValue: amount}
		transfer = tosca.Transfer{Source: self, Target: self, Value: amount}
	case tosca.DelegateCall:
		context = tosca.CallContext{Address: self, Caller: frame.Caller, CodeAddress: target, ApparentValue: frame.ApparentValue}
		transfer = tosca.Transfer{Source: self, Target: self}
	case tosca.StaticCall:
		context = tosca.CallContext{Address: target, Caller: self, CodeAddress: target}
		transfer = tosca.Transfer{Source: self, Target: target}
	}
	context.Scheme = scheme

	return tosca.NewCallInputs(tosca.CallInputs{
		Contract: target,
		Transfer: transfer,
		Input:    input,
		GasLimit: tosca.Gas(gas),
		Context:  context,
		IsStatic: frameIsStatic || scheme == tosca.StaticCall,
	})
}

// CreateInputsFromOpCode assembles the inputs of a create instruction executed
// by the given frame. The salt is ignored for CREATE.
func CreateInputsFromOpCode(
	op vm.OpCode,
	frame tosca.CallContext,
	frameIsStatic bool,
	value *uint256.Int,
	initCode []byte,
	salt *uint256.Int,
	gas uint64,
) (tosca.CreateInputs, error) {
	kind, err := CreateKindFromOpCode(op)
	if err != nil {
		return tosca.CreateInputs{}, err
	}
	if gas > math.MaxInt64 {
		return tosca.CreateInputs{}, fmt.Errorf("%w: %d", errGasOverflow, gas)
	}

	scheme := tosca.SequentialCreate()
	if kind == tosca.Create2 {
		scheme = tosca.SaltedCreate(tosca.Hash(tosca.ValueFromUint256(salt)))
	}

	return tosca.NewCreateInputs(tosca.CreateInputs{
		Caller:   frame.Address,
		Scheme:   scheme,
		Value:    tosca.ValueFromUint256(value),
		InitCode: initCode,
		GasLimit: tosca.Gas(gas),
	}, frameIsStatic)
}
