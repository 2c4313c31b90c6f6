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
	"fmt"

	"github.com/panoptisDev/frames/go/tosca"
	"github.com/urfave/cli/v2"
)

var (
	callerFlag = &cli.StringFlag{
		Name:     "caller",
		Usage:    "hex address of the creating account",
		Required: true,
	}
	nonceFlag = &cli.Uint64Flag{
		Name:  "nonce",
		Usage: "nonce of the creating account before the creation",
	}
	saltFlag = &cli.StringFlag{
		Name:  "salt",
		Usage: "32 byte hex salt, selects salted (CREATE2) address derivation",
	}
	initCodeFlag = &cli.StringFlag{
		Name:  "init-code",
		Usage: "hex init code, only relevant together with --salt",
		Value: "0x",
	}
)

var createAddressCmd = cli.Command{
	Action: doCreateAddress,
	Name:   "create-address",
	Usage:  "derive the address of a contract to be created",
	Flags: []cli.Flag{
		callerFlag,
		nonceFlag,
		saltFlag,
		initCodeFlag,
	},
}

func doCreateAddress(ctx *cli.Context) error {
	var inputs tosca.CreateInputs
	if err := inputs.Caller.UnmarshalText([]byte(ctx.String(callerFlag.Name))); err != nil {
		return fmt.Errorf("invalid caller: %w", err)
	}
	if err := inputs.InitCode.UnmarshalText([]byte(ctx.String(initCodeFlag.Name))); err != nil {
		return fmt.Errorf("invalid init code: %w", err)
	}
	if ctx.IsSet(saltFlag.Name) {
		var salt tosca.Hash
		if err := salt.UnmarshalText([]byte(ctx.String(saltFlag.Name))); err != nil {
			return fmt.Errorf("invalid salt: %w", err)
		}
		inputs.Scheme = tosca.SaltedCreate(salt)
	}

	fmt.Fprintln(ctx.App.Writer, inputs.CreatedAddress(ctx.Uint64(nonceFlag.Name)))
	return nil
}
