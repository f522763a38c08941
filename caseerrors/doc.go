// Package caseerrors provides structured error types for the casekit library.
//
// Import path: github.com/erraggy/casekit/caseerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a missing input apart from an input of the wrong type.
//
// # Error Types
//
//   - [MissingValueError]: the input was nil, a nil pointer or a nil interface
//   - [InvalidTypeError]: the input was present but is not text
//   - [ConfigError]: invalid options (unknown convention, conflicting inputs)
//
// # Sentinel Errors
//
//   - [ErrInvalidInput]: Matches both [MissingValueError] and [InvalidTypeError]
//   - [ErrMissingValue]: Matches any [MissingValueError]
//   - [ErrInvalidType]: Matches any [InvalidTypeError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// Strings are never rejected. An empty or punctuation-only string converts
// to the empty string without an error.
//
// # Usage Examples
//
//	out, err := casing.ToCamelCase(value)
//	if errors.Is(err, caseerrors.ErrMissingValue) {
//	    // nothing was supplied
//	}
//
//	var typeErr *caseerrors.InvalidTypeError
//	if errors.As(err, &typeErr) {
//	    fmt.Printf("%s: got %s\n", typeErr.Operation, typeErr.Type)
//	}
package caseerrors
