// Package validation checks user-supplied input. All checks return an
// Error, so handlers can tell user-facing validation failures apart from
// infrastructure errors.
package validation

// Error is a user-facing validation failure.
type Error string

func (e Error) Error() string {
	return string(e)
}
