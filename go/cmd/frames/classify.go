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
	"io"
	"strconv"

	"github.com/panoptisDev/frames/go/tosca"
	"github.com/panoptisDev/frames/go/tosca/admin"
	"github.com/urfave/cli/v2"
)

var (
	familyFlag = &cli.StringFlag{
		Name:  "family",
		Usage: "kind family to decode, either 'config' or 'admin'",
		Value: "admin",
	}
	strictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "route the codes and fail on unknown kinds",
	}
)

var classifyCmd = cli.Command{
	Action:    doClassify,
	Name:      "classify",
	Usage:     "decode administrative kind codes",
	ArgsUsage: "<code>...",
	Flags: []cli.Flag{
		familyFlag,
		strictFlag,
	},
}

// printer is a handler that writes every routed request to the output.
type printer struct {
	out io.Writer
}

func (p printer) HandleConfig(kind admin.ConfigKind, _ tosca.Data) error {
	_, err := fmt.Fprintf(p.out, "%d\t%v\n", kind.Uint8(), kind)
	return err
}

func (p printer) HandleAdminCall(kind admin.AdminCallKind, _ tosca.Data) error {
	_, err := fmt.Fprintf(p.out, "%d\t%v\n", kind.Uint8(), kind)
	return err
}

func doClassify(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("at least one code is required")
	}
	family := ctx.String(familyFlag.Name)
	if family != "config" && family != "admin" {
		return fmt.Errorf("unknown family %q", family)
	}

	out := ctx.App.Writer
	router := admin.NewRouter(printer{out}, printer{out})
	for _, arg := range ctx.Args().Slice() {
		code, err := strconv.ParseUint(arg, 0, 8)
		if err != nil {
			return fmt.Errorf("invalid code %q: %w", arg, err)
		}

		if ctx.Bool(strictFlag.Name) {
			route := router.RouteAdminCall
			if family == "config" {
				route = router.RouteConfig
			}
			if err := route(tosca.Data{byte(code)}); err != nil {
				return err
			}
			continue
		}

		var name fmt.Stringer = admin.AdminCallKindFromUint8(uint8(code))
		if family == "config" {
			name = admin.ConfigKindFromUint8(uint8(code))
		}
		fmt.Fprintf(out, "%d\t%v\n", code, name)
	}
	return nil
}
