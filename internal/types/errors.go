package types

import "errors"

var (
	// ErrInvalidPreference marks request input that fails validation
	// (unknown travel style, out-of-range duration/budget/group size).
	// Handlers map it to a 400 response.
	ErrInvalidPreference = errors.New("invalid trip preference")

	// ErrConfiguration marks broken process-wide state, such as an empty
	// destination catalog. It should never happen with the static
	// catalog and is treated as fatal.
	ErrConfiguration = errors.New("planner configuration error")

	// ErrNotFound is returned by repositories when a stored itinerary
	// does not exist or belongs to another user.
	ErrNotFound = errors.New("itinerary not found")
)
