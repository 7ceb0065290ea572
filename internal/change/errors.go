package change

import "errors"

var (
	// ErrInvalidDenominations is returned when a denomination set is empty, not strictly
	// descending, contains non-positive values or does not end with a 1-cent coin.
	ErrInvalidDenominations = errors.New("denominations must be positive, strictly descending and end with 1")
)
