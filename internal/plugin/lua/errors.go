package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a call runs past its deadline.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNoFactory is returned for scripts without a gesture function.
	ErrNoFactory = errors.New("script defines no gesture function")

	// ErrBadHandlers is returned when gesture() does not return a table.
	ErrBadHandlers = errors.New("gesture function must return a table")

	// ErrUnsupported is returned by API calls the host store cannot serve.
	ErrUnsupported = errors.New("operation not supported by scene store")
)
