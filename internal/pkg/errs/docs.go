// Package errs provides the typed errors shared by the print-shop backend.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found or does not belong to its expected owner
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) matched with errors.Is
//   - a struct type carrying the attributed field (ParamName) and an optional Cause
//   - constructors with and without cause
//   - Unwrap returning the sentinel
//
// Validation errors are field-attributed so the HTTP adapter can report which field was rejected.
package errs
