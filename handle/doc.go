// Package handle provides the opaque handle table for host-owned objects
// shared across the wasm boundary.
//
// Objects such as application contexts stay owned by the embedding program;
// guests only ever see an integer handle. Handle 0 is reserved and always
// invalid.
//
//	table := handle.NewTable()
//	h := table.Insert(typeID, appCtx)
//
//	v, ok := table.Borrow(h)   // pin for the duration of a call
//	defer table.Release(h)
//
// A resource with outstanding borrows cannot be removed, so a value borrowed
// by an in-flight call never disappears under it.
package handle
