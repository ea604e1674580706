// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "entry name already exists",
//	    cookbook.ErrDuplicateName,
//	    map[string]any{
//	        "reason": "DuplicateName",
//	        "name":   "Egg",
//	    },
//	)
//
// Callers branch on the code with CodeOf and read context values with
// ContextValue; the wrapped cause remains reachable through errors.Is.
package errors
