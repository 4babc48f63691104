package lookup

import "errors"

// Errors classified for the HTTP layer. Both map to client errors; anything
// else out of the service is a server error.
var (
	// ErrInvalidFormat is returned when an address fails the local shape
	// check. No remote or store calls are made.
	ErrInvalidFormat = errors.New("invalid TRON address format: address must start with 'T' and contain 34 characters")

	// ErrInvalidAddress is returned when the node client rejects the
	// address as malformed. No store call is made.
	ErrInvalidAddress = errors.New("invalid TRON address")

	// ErrInvalidPage is returned for history
	// page/page_size values outside their allowed ranges.
	ErrInvalidPage = errors.New("page must be >= 1 and page_size between 1 and 100")
)
