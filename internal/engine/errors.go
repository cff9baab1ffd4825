package engine

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the engine and its boundaries.
// Compare with errors.Is.
const (
	// ErrNotFound indicates a reference to an activity that does not exist.
	ErrNotFound = constError("activity not found")

	// ErrMissingFields indicates an ingestion input without the required
	// description/quantity/unit fields. Callers wrap it with the list of
	// missing field names.
	ErrMissingFields = constError("missing required fields")

	// ErrEmptyInput indicates an ingestion input with no data rows.
	ErrEmptyInput = constError("input contains no data rows")
)
