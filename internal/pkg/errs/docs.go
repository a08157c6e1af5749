// Package errs provides standardized error types for the restaurant ordering backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ApplicationError: For unexpected collaborator failures, with an optional status code
//   - UnauthorizedError: For failed session token verification
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinel errors double as the error taxonomy the HTTP layer maps to
// response codes: ErrValueIsRequired/ErrValueIsInvalid/ErrValueIsOutOfRange
// correspond to client errors (400), ErrObjectNotFound to 404,
// ErrUnauthorized to 401, and ErrApplication carries its own code
// (defaulting to 500).
package errs
