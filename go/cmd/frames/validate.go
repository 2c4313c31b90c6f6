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
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/panoptisDev/frames/go/geth_adapter"
	"github.com/panoptisDev/frames/go/tosca"
	"github.com/urfave/cli/v2"
)

var parentGasFlag = &cli.Int64Flag{
	Name:  "parent-gas",
	Usage: "gas left in the parent frame, the gas limit is checked against it if set",
}

var validateCmd = cli.Command{
	Action:    doValidate,
	Name:      "validate",
	Usage:     "check a JSON encoded call input for consistency",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		parentGasFlag,
	},
}

func doValidate(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one input file")
	}
	path := ctx.Args().First()
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var inputs tosca.CallInputs
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if err := inputs.Validate(); err != nil {
		return fmt.Errorf("invalid call inputs in %s: %w", path, err)
	}
	if ctx.IsSet(parentGasFlag.Name) {
		if err := inputs.CheckGasLimit(tosca.Gas(ctx.Int64(parentGasFlag.Name))); err != nil {
			return fmt.Errorf("invalid call inputs in %s: %w", path, err)
		}
	}

	op, err := geth_adapter.OpCodeFromCallScheme(inputs.Context.Scheme)
	if err != nil {
		return err
	}
	log.Debug("Validated call inputs", "file", path, "contract", inputs.Contract, "gas", inputs.GasLimit)
	fmt.Fprintf(ctx.App.Writer, "valid %v to %v\n", op, inputs.Contract)
	return nil
}
