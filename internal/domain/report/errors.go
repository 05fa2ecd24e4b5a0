package report

import "errors"

var (
	// ErrStoreUnavailable marks an aggregation pass aborted by a store
	// failure; the whole request or tick fails as one unit.
	ErrStoreUnavailable = errors.New("record store unavailable")
)
