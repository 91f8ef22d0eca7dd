package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Registry errors
const (
	// ErrCodeAlreadyRegistered indicates a provider with the same name is already registered.
	ErrCodeAlreadyRegistered ErrorCode = "ALREADY_REGISTERED"
	// ErrCodeNotFound indicates a provider was not found by an operation that requires one.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Stream errors
const (
	// ErrCodeStreamClosed indicates the receiving side of a stream has been closed.
	ErrCodeStreamClosed ErrorCode = "STREAM_CLOSED"
	// ErrCodeBufferFull indicates a non-blocking send found the buffer full.
	ErrCodeBufferFull ErrorCode = "BUFFER_FULL"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates a configuration value failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeTimeout indicates an operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeBufferFull: true,
	ErrCodeTimeout:    true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// A full buffer drains as the consumer catches up; a closed stream never
// reopens, so it is not retryable.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
