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

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/panoptisDev/frames/go/tosca"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newBalanceState returns a mock whose balances are backed by the given map.
func newBalanceState(ctrl *gomock.Controller, balances map[tosca.Address]tosca.Value) *MockWorldState {
	state := NewMockWorldState(ctrl)
	state.EXPECT().GetBalance(gomock.Any()).DoAndReturn(func(address tosca.Address) tosca.Value {
		return balances[address]
	}).AnyTimes()
	state.EXPECT().SetBalance(gomock.Any(), gomock.Any()).Do(func(address tosca.Address, value tosca.Value) {
		balances[address] = value
	}).AnyTimes()
	return state
}

func TestApplyTransfer_MovesValue(t *testing.T) {
	source, target := tosca.Address{1}, tosca.Address{2}
	balances := map[tosca.Address]tosca.Value{
		source: tosca.NewValue(100),
		target: tosca.NewValue(5),
	}
	state := newBalanceState(gomock.NewController(t), balances)

	err := ApplyTransfer(state, tosca.Transfer{Source: source, Target: target, Value: tosca.NewValue(40)})
	require.NoError(t, err)
	require.Equal(t, tosca.NewValue(60), balances[source])
	require.Equal(t, tosca.NewValue(45), balances[target])
}

func TestApplyTransfer_FailedTransfersDoNotModifyState(t *testing.T) {
	maxValue := tosca.ValueFromUint256(new(uint256.Int).SetAllOne())
	tests := map[string]struct {
		sourceBalance tosca.Value
		targetBalance tosca.Value
		value         tosca.Value
		want          error
	}{
		"insufficient balance": {
			sourceBalance: tosca.NewValue(10),
			value:         tosca.NewValue(11),
			want:          ErrInsufficientBalance,
		},
		"target overflow": {
			sourceBalance: tosca.NewValue(10),
			targetBalance: maxValue,
			value:         tosca.NewValue(1),
			want:          ErrBalanceOverflow,
		},
	}

	source, target := tosca.Address{1}, tosca.Address{2}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			state := NewMockWorldState(ctrl)
			state.EXPECT().GetBalance(source).Return(test.sourceBalance).AnyTimes()
			state.EXPECT().GetBalance(target).Return(test.targetBalance).AnyTimes()
			// no SetBalance calls are expected

			transfer := tosca.Transfer{Source: source, Target: target, Value: test.value}
			if CanTransfer(state, transfer) {
				t.Errorf("transfer should not be possible")
			}
			if err := ApplyTransfer(state, transfer); !errors.Is(err, test.want) {
				t.Errorf("want: %v, got: %v", test.want, err)
			}
		})
	}
}

func TestApplyTransfer_ZeroValueAndSelfTransfersAreNoOps(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := NewMockWorldState(ctrl)
	state.EXPECT().GetBalance(tosca.Address{1}).Return(tosca.NewValue(10)).AnyTimes()

	if err := ApplyTransfer(state, tosca.Transfer{Source: tosca.Address{1}, Target: tosca.Address{2}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	selfTransfer := tosca.Transfer{Source: tosca.Address{1}, Target: tosca.Address{1}, Value: tosca.NewValue(10)}
	if err := ApplyTransfer(state, selfTransfer); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
