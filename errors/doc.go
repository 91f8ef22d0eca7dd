// Package errors provides unified error handling for spikit.
//
// It implements a structured error type with machine-readable codes and
// retryable detection, plus the stable sentinel values shared by the
// registry and stream packages.
//
// # Usage
//
//	if err := reg.RegisterUnique(p); err != nil {
//	    var appErr *errors.AppError
//	    if stderrors.As(err, &appErr) && appErr.Code == errors.ErrCodeAlreadyRegistered {
//	        // duplicate provider name
//	    }
//	}
//
// Lookup misses are never errors: registry lookups report absence through
// their boolean result, and streams report normal end-of-stream through
// their ok result. Only genuine failure conditions (duplicate unique
// registration, closed stream, full buffer, invalid configuration) surface
// as error values.
package errors
