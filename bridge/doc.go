// Package bridge implements the resolve operation: given a borrowed context
// handle and an integer resource identifier, obtain the context's resource
// accessor and ask it for the text.
//
// The two capability lookups mirror dynamic method dispatch across the
// foreign boundary. Contexts implementing resbridge.ResourceProvider take the
// interface fast path; any other value is dispatched reflectively by method
// name, so foreign context shapes work without importing this module.
//
// The bridge is stateless: it validates nothing about the identifier, caches
// nothing, and retains neither the context nor the resolved text past the
// call. Every failure propagates to the caller untouched.
package bridge
