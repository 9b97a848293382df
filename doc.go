// Package resbridge bridges localized string resources across a WebAssembly
// foreign-function boundary.
//
// A guest module holds an opaque handle to an application context owned by
// the embedding Go program. Calling the exported resolve-string host function
// with that handle and an integer resource identifier returns the text the
// application's own resource system produces for that identifier, unmodified.
// Lookup or resolution failure is never handled inside the bridge; it
// surfaces through the boundary's fault channel as a trap.
//
// # Architecture Overview
//
//	resbridge/        Root package with the resolver contracts and guest memory interfaces
//	├── bridge/       The stateless resolve operation and its capability dispatch
//	├── catalog/      go-i18n backed string catalog (integer id -> localized text)
//	├── handle/       Borrow-tracking handle table for host-owned objects
//	├── wasmhost/     wazero host module exposing resolve-string to guests
//	└── errors/       Structured error types
//
// # Quick Start
//
// Register a context and resolve through the bridge from Go:
//
//	table := handle.NewTable()
//	h := table.Insert(appContextType, appCtx)
//
//	b := bridge.New(table)
//	text, err := b.Resolve(ctx, h, 42)
//
// Expose the same operation to a wasm guest:
//
//	host := wasmhost.New(b)
//	if _, err := host.Instantiate(ctx, wazeroRuntime); err != nil {
//	    log.Fatal(err)
//	}
//
// # Ownership
//
// Context objects stay owned by the embedder. The bridge borrows the handle
// for the duration of one call and retains neither the context nor the
// resolved text. Resolved strings are constructed fresh per call.
//
// # Thread Safety
//
// The handle table and the bridge are safe for concurrent use. Re-entrancy
// across the wasm boundary follows wazero's own guarantees; the bridge adds
// no synchronization of its own.
package resbridge
