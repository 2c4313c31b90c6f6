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
	"testing"

	"github.com/holiman/uint256"
)

func TestNewValue_WordsAreBigEndian(t *testing.T) {
	value := NewValue(1, 2)
	if value[23] != 1 || value[31] != 2 {
		t.Errorf("unexpected encoding: %x", value[:])
	}
	if !NewValue().IsZero() {
		t.Errorf("NewValue() should be zero")
	}
}

func TestValue_ArithmeticWraps(t *testing.T) {
	maxValue := ValueFromUint256(new(uint256.Int).SetAllOne())
	if got := Add(maxValue, NewValue(1)); !got.IsZero() {
		t.Errorf("want: 0, got: %v", got)
	}
	if got := Sub(NewValue(0), NewValue(1)); got != maxValue {
		t.Errorf("want: %v, got: %v", maxValue, got)
	}
	if got := Sub(NewValue(10), NewValue(3)); got != NewValue(7) {
		t.Errorf("want: 7, got: %v", got)
	}
}

func TestValue_Cmp(t *testing.T) {
	tests := map[string]struct {
		a, b Value
		want int
	}{
		"less":    {NewValue(1), NewValue(2), -1},
		"equal":   {NewValue(2), NewValue(2), 0},
		"greater": {NewValue(1, 0), NewValue(2), 1},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := test.a.Cmp(test.b); got != test.want {
				t.Errorf("want: %d, got: %d", test.want, got)
			}
		})
	}
}

func TestValue_UnmarshalTextRejectsInvalidInput(t *testing.T) {
	for _, input := range []string{"", "12", "0xzz", "0x00"} {
		var value Value
		if err := value.UnmarshalText([]byte(input)); err == nil {
			t.Errorf("expected error for input %q", input)
		}
	}
}
