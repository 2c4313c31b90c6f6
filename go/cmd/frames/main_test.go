// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/panoptisDev/frames/go/tosca"
	"github.com/panoptisDev/frames/go/tosca/admin"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"frames", "--verbosity", "0"}, args...))
	return out.String(), err
}

func TestClassify_PrintsKindsOfAllCodes(t *testing.T) {
	out, err := run(t, "classify", "--family", "config", "0", "1", "0x04", "5")
	require.NoError(t, err)
	require.Equal(t, "0\tUnknown\n1\tMultisigAddress\n4\tDumpState\n5\tUnknown\n", out)

	out, err = run(t, "classify", "2", "3")
	require.NoError(t, err)
	require.Equal(t, "2\tReloadRuntimeConfig\n3\tMint\n", out)
}

func TestClassify_StrictModeRejectsUnknownKinds(t *testing.T) {
	out, err := run(t, "classify", "--strict", "4", "9")
	if !errors.Is(err, admin.ErrUnknownAdminCall) {
		t.Errorf("want: %v, got: %v", admin.ErrUnknownAdminCall, err)
	}
	require.Equal(t, "4\tBurn\n", out)
}

func TestClassify_InvalidArguments(t *testing.T) {
	tests := map[string][]string{
		"no codes":       {"classify"},
		"too large":      {"classify", "256"},
		"not a number":   {"classify", "mint"},
		"unknown family": {"classify", "--family", "user", "1"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := run(t, args...); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func writeInputs(t *testing.T, inputs tosca.CallInputs) string {
	t.Helper()
	encoded, err := json.Marshal(inputs)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "inputs.json")
	require.NoError(t, os.WriteFile(path, encoded, 0600))
	return path
}

func TestValidate_AcceptsConsistentInputs(t *testing.T) {
	path := writeInputs(t, tosca.CallInputs{
		Contract: tosca.Address{0x0a},
		GasLimit: 100,
		Context:  tosca.CallContext{Scheme: tosca.StaticCall},
		IsStatic: true,
	})

	out, err := run(t, "validate", "--parent-gas", "100", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "valid STATICCALL to 0x0a"), out)
}

func TestValidate_RejectsInconsistentInputs(t *testing.T) {
	tests := map[string]struct {
		inputs tosca.CallInputs
		args   []string
		want   error
	}{
		"static value transfer": {
			inputs: tosca.CallInputs{
				Transfer: tosca.Transfer{Value: tosca.NewValue(1)},
				Context:  tosca.CallContext{Scheme: tosca.StaticCall},
				IsStatic: true,
			},
			want: tosca.ErrStaticValueTransfer,
		},
		"gas above parent": {
			inputs: tosca.CallInputs{GasLimit: 101},
			args:   []string{"--parent-gas", "100"},
			want:   tosca.ErrGasLimitExceedsParent,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeInputs(t, test.inputs)
			args := append(append([]string{"validate"}, test.args...), path)
			if _, err := run(t, args...); !errors.Is(err, test.want) {
				t.Errorf("want: %v, got: %v", test.want, err)
			}
		})
	}
}

func TestCreateAddress_DerivesAddresses(t *testing.T) {
	caller := common.HexToAddress("0x00000000000000000000000000000000000000ab")

	out, err := run(t, "create-address", "--caller", caller.Hex(), "--nonce", "3")
	require.NoError(t, err)
	require.Equal(t, tosca.Address(crypto.CreateAddress(caller, 3)).String()+"\n", out)

	salt := common.Hash{31: 1}
	out, err = run(t, "create-address", "--caller", caller.Hex(), "--salt", salt.Hex(), "--init-code", "0x6000")
	require.NoError(t, err)
	want := crypto.CreateAddress2(caller, salt, crypto.Keccak256([]byte{0x60, 0x00}))
	require.Equal(t, tosca.Address(want).String()+"\n", out)
}

func TestCreateAddress_RejectsMalformedCaller(t *testing.T) {
	if _, err := run(t, "create-address", "--caller", "0x1234"); err == nil {
		t.Errorf("expected an error")
	}
}
