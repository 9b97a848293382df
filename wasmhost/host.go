package wasmhost

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/localekit/resbridge/bridge"
	"github.com/localekit/resbridge/errors"
	"github.com/localekit/resbridge/handle"
)

// Namespace is the import module name guests bind against.
const Namespace = "localekit:resources/strings@0.1.0"

// ResolveString is the exported entry point name.
const ResolveString = "resolve-string"

// Host binds a bridge into a wazero runtime as a host module.
type Host struct {
	bridge *bridge.Bridge
}

// New creates a host module wrapper around b.
func New(b *bridge.Bridge) *Host {
	return &Host{bridge: b}
}

// Namespace returns the host module's import name.
func (h *Host) Namespace() string {
	return Namespace
}

// Instantiate registers the host module with r. Must be called before
// instantiating guests that import it.
func (h *Host) Instantiate(ctx context.Context, r wazero.Runtime) (api.Module, error) {
	builder := r.NewHostModuleBuilder(Namespace)

	builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(h.resolveString),
			[]api.ValueType{api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32},
			nil).
		Export(ResolveString)

	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, errors.Registration(errors.PhaseHost, Namespace, ResolveString, err)
	}
	return mod, nil
}

// resolveString implements resolve-string(context, res-id, ret).
// Any failure panics; wazero recovers the panic into the trap surfaced to
// whoever called into the guest. Nothing is written on failure.
func (h *Host) resolveString(ctx context.Context, mod api.Module, stack []uint64) {
	contextHandle := handle.Handle(uint32(stack[0]))
	resID := uint32(stack[1])
	retptr := uint32(stack[2])

	text, err := h.bridge.Resolve(ctx, contextHandle, resID)
	if err != nil {
		panic(err)
	}

	mem, alloc, err := guestExports(ctx, mod)
	if err != nil {
		panic(err)
	}

	if err := lowerString(mem, alloc, retptr, text); err != nil {
		panic(err)
	}
}
