// Package errors provides structured error types for the resbridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the offending Go type, a human-readable
// detail, and a cause chain.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindCapabilityMissing).
//		GoType("*myapp.Context").
//		Detail("no Resources method").
//		Build()
//
// Or the convenience constructors for common patterns:
//
//	err := errors.InvalidHandle(errors.PhaseLookup, 7)
//	err := errors.NotFound(errors.PhaseResolve, "resource id", "9999")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
