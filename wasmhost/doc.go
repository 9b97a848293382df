// Package wasmhost exposes the bridge to WebAssembly guests as a wazero host
// module.
//
// The module localekit:resources/strings@0.1.0 exports one function:
//
//	resolve-string(context: i32, res-id: i32, ret: i32)
//
// The guest passes an opaque context handle, a resource identifier, and a
// pointer to an 8-byte return area. On success the host allocates the UTF-8
// text inside the guest's linear memory (via the guest's cabi_realloc, or a
// plain alloc export) and writes the (ptr, len) pair to the return area. On
// any failure the call traps; the fault reaches the caller of the guest
// through wazero's own propagation, with no substitute value written.
package wasmhost
