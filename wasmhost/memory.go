package wasmhost

import (
	"context"

	"github.com/tetratelabs/wazero/api"

	"github.com/localekit/resbridge"
	"github.com/localekit/resbridge/errors"
)

// Guest allocator export names, checked in order.
const (
	cabiRealloc = "cabi_realloc"
	simpleAlloc = "alloc"
)

// guestExports resolves the calling module's linear memory and allocator
// behind the root interfaces. The adapters are scoped to one call.
func guestExports(ctx context.Context, mod api.Module) (resbridge.Memory, resbridge.Allocator, error) {
	mem := mod.Memory()
	if mem == nil {
		return nil, nil, errors.NoMemory(errors.PhaseHost)
	}

	fn := mod.ExportedFunction(cabiRealloc)
	simple := false
	if fn == nil {
		fn = mod.ExportedFunction(simpleAlloc)
		simple = true
	}
	if fn == nil {
		return nil, nil, errors.New(errors.PhaseHost, errors.KindAllocation).
			Detail("guest exports neither %s nor %s", cabiRealloc, simpleAlloc).
			Build()
	}

	return guestMemory{mem: mem}, guestAllocator{ctx: ctx, fn: fn, simple: simple}, nil
}

// guestMemory adapts api.Memory to the root Memory interface.
type guestMemory struct {
	mem api.Memory
}

func (m guestMemory) Read(offset, length uint32) ([]byte, error) {
	buf, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, errors.New(errors.PhaseHost, errors.KindOutOfBounds).
			Detail("read %d bytes at %d exceeds linear memory", length, offset).
			Build()
	}
	return buf, nil
}

func (m guestMemory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return errors.New(errors.PhaseHost, errors.KindOutOfBounds).
			Detail("write %d bytes at %d exceeds linear memory", len(data), offset).
			Build()
	}
	return nil
}

func (m guestMemory) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, errors.New(errors.PhaseHost, errors.KindOutOfBounds).
			Detail("read u32 at %d exceeds linear memory", offset).
			Build()
	}
	return v, nil
}

func (m guestMemory) WriteU32(offset uint32, value uint32) error {
	if !m.mem.WriteUint32Le(offset, value) {
		return errors.New(errors.PhaseHost, errors.KindOutOfBounds).
			Detail("write u32 at %d exceeds linear memory", offset).
			Build()
	}
	return nil
}

// guestAllocator allocates guest memory through an exported allocator
// function. cabi_realloc takes (orig_ptr, orig_size, align, new_size); the
// simple form takes just the size.
type guestAllocator struct {
	ctx    context.Context
	fn     api.Function
	simple bool
}

func (a guestAllocator) Alloc(size, align uint32) (uint32, error) {
	var (
		results []uint64
		err     error
	)
	if a.simple {
		results, err = a.fn.Call(a.ctx, uint64(size))
	} else {
		results, err = a.fn.Call(a.ctx, 0, 0, uint64(align), uint64(size))
	}
	if err != nil {
		return 0, errors.AllocationFailed(errors.PhaseHost, size, align, err)
	}
	if len(results) == 0 || uint32(results[0]) == 0 {
		return 0, errors.AllocationFailed(errors.PhaseHost, size, align, nil)
	}
	return uint32(results[0]), nil
}
