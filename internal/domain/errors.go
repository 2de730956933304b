package domain

import "errors"

// Failure taxonomy for backing-store round trips. Callers match with
// errors.Is; the underlying transport error stays wrapped for logging.
var (
	// ErrLoadFailed means one of the collection fetches failed. Both
	// collections are considered invalid; there is no partial load.
	ErrLoadFailed = errors.New("inventory load failed")

	// ErrReorderFailed means the reorder command did not go through. No
	// local state was touched and no retry was attempted.
	ErrReorderFailed = errors.New("reorder failed")

	// ErrDeleteFailed means the delete command did not go through.
	ErrDeleteFailed = errors.New("delete failed")
)
