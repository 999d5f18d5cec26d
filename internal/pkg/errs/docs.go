// Package errs provides the typed errors shared by the domain, application and
// adapter layers of the ordering service.
//
// Every error type follows the same pattern:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ErrValueIsOutOfRange, ErrValueIsRequired)
//   - a struct carrying the parameter name and optional cause
//   - New... and New...WithCause constructors
//   - Unwrap returning the sentinel, so callers classify with errors.Is
//
// Transport adapters map the sentinels to status codes; nothing below the
// adapters needs to know about HTTP.
package errs
