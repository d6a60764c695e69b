package store

import "errors"

// Error kinds surfaced by the store. Operations wrap these with a
// human-readable message; callers match with errors.Is.
var (
	// ErrNotFound indicates the addressed entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness violation or a delete blocked by
	// live dependents.
	ErrConflict = errors.New("conflict")
	// ErrForbidden indicates an authorization failure such as a wrong owner
	// or a protected account.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidDate indicates a date string outside the accepted
	// "MM/YYYY" or "YYYY-MM-DD" forms.
	ErrInvalidDate = errors.New("invalid date")
)
