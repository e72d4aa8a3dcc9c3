// Package errs provides standardized error types for the kitchen display service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For numeric values outside their allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - TransitionIsInvalidError: For lifecycle actions rejected by a status guard
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Adapters classify failures with errors.Is against the sentinels, so a
// not-found is never reported as an invalid transition and vice versa.
package errs
