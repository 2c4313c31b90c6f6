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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelfDestructResult_DefaultHasAllFlagsCleared(t *testing.T) {
	var result SelfDestructResult
	if result.HadValue || result.TargetExists || result.IsCold || result.PreviouslyDestroyed {
		t.Errorf("default result has flags set: %+v", result)
	}
	if result.CreditsBeneficiary() {
		t.Errorf("default result must not credit the beneficiary")
	}
}

func TestSelfDestructResult_CreditsBeneficiary(t *testing.T) {
	tests := map[string]struct {
		result SelfDestructResult
		want   bool
	}{
		"no value":                {SelfDestructResult{}, false},
		"value":                   {SelfDestructResult{HadValue: true}, true},
		"value, destroyed before": {SelfDestructResult{HadValue: true, PreviouslyDestroyed: true}, false},
		"cold target with value":  {SelfDestructResult{HadValue: true, IsCold: true}, true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := test.result.CreditsBeneficiary(); got != test.want {
				t.Errorf("want: %t, got: %t", test.want, got)
			}
		})
	}
}

func TestSelfDestructResult_JsonUsesFieldNames(t *testing.T) {
	result := SelfDestructResult{HadValue: true, IsCold: true}
	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"HadValue":true,"TargetExists":false,"IsCold":true,"PreviouslyDestroyed":false}`,
		string(encoded),
	)
}
