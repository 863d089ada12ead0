// Package errs provides standardized error types for the courier backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy surfaced at the request boundary:
//   - ObjectNotFoundError: entity absent or not owned by the caller
//   - ObjectAlreadyExistsError: uniqueness violation (e.g. duplicate assignment)
//   - InvalidTransitionError: a state machine guard rejected a transition
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     missing or malformed input
//   - UnauthorizedError: missing credentials or insufficient capability
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// None of these errors are fatal to the process; the HTTP adapter recovers
// them at the request boundary and maps them to structured JSON payloads.
package errs
