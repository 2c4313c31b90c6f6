// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package admin

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/panoptisDev/frames/go/tosca"
)

//go:generate mockgen -source router.go -destination router_mock.go -package admin

const (
	ErrEmptyInput        = tosca.ConstError("empty administrative input")
	ErrUnknownConfigKind = tosca.ConstError("unknown config kind")
	ErrUnknownAdminCall  = tosca.ConstError("unknown admin call kind")
	ErrNoHandler         = tosca.ConstError("no handler registered")
)

// ConfigHandler applies a decoded configuration request.
type ConfigHandler interface {
	HandleConfig(kind ConfigKind, payload tosca.Data) error
}

// AdminCallHandler executes a decoded administrative call.
type AdminCallHandler interface {
	HandleAdminCall(kind AdminCallKind, payload tosca.Data) error
}

// Router decodes raw administrative input and forwards it to the responsible
// handler. The first byte of the input is the kind code, the remainder is the
// payload passed on to the handler. Inputs decoding to an unknown kind are
// rejected and never reach a handler.
type Router struct {
	config ConfigHandler
	admin  AdminCallHandler
	log    log.Logger
}

// NewRouter creates a router forwarding to the given handlers. Either handler
// may be nil, in which case requests of the respective family fail with
// ErrNoHandler.
func NewRouter(config ConfigHandler, admin AdminCallHandler) *Router {
	return &Router{
		config: config,
		admin:  admin,
		log:    log.Root().New("module", "admin"),
	}
}

func (r *Router) RouteConfig(input tosca.Data) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}
	kind := ConfigKindFromUint8(input[0])
	if kind == UnknownConfig {
		r.log.Warn("Rejected config request", "code", input[0])
		return fmt.Errorf("%w: %d", ErrUnknownConfigKind, input[0])
	}
	if r.config == nil {
		return fmt.Errorf("%w: config %v", ErrNoHandler, kind)
	}
	r.log.Debug("Routing config request", "kind", kind, "payload", len(input)-1)
	if err := r.config.HandleConfig(kind, input[1:]); err != nil {
		return fmt.Errorf("config %v failed: %w", kind, err)
	}
	return nil
}

func (r *Router) RouteAdminCall(input tosca.Data) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}
	kind := AdminCallKindFromUint8(input[0])
	if kind == UnknownAdminCall {
		r.log.Warn("Rejected admin call", "code", input[0])
		return fmt.Errorf("%w: %d", ErrUnknownAdminCall, input[0])
	}
	if r.admin == nil {
		return fmt.Errorf("%w: admin call %v", ErrNoHandler, kind)
	}
	r.log.Debug("Routing admin call", "kind", kind, "payload", len(input)-1)
	if err := r.admin.HandleAdminCall(kind, input[1:]); err != nil {
		return fmt.Errorf("admin call %v failed: %w", kind, err)
	}
	return nil
}
