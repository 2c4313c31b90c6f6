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

// ConstError is an error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

const (
	ErrStaticFlagMissing     = ConstError("static call scheme without static flag")
	ErrStaticValueTransfer   = ConstError("value transfer in static context")
	ErrCreateInStaticContext = ConstError("contract creation in static context")
	ErrNegativeGasLimit      = ConstError("negative gas limit")
	ErrGasLimitExceedsParent = ConstError("gas limit exceeds remaining gas of parent frame")
	ErrUnknownCallScheme     = ConstError("unknown call scheme")
	ErrUnknownCreateKind     = ConstError("unknown create kind")
)
