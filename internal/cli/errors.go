package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts and agents.
const (
	// Store errors
	ErrStoreNotFound     = "STORE_NOT_FOUND"
	ErrStoreNotSpecified = "STORE_NOT_SPECIFIED"
	ErrConfigInvalid     = "CONFIG_INVALID"

	// Resolution errors
	ErrNoteNotFound      = "NOTE_NOT_FOUND"
	ErrMalformedFilename = "MALFORMED_FILENAME"
	ErrNotInStore        = "NOT_IN_STORE"

	// Search errors
	ErrNoSearchResults = "NO_SEARCH_RESULTS"

	// Link errors
	ErrNoLinkAtPosition = "NO_LINK_AT_POSITION"

	// File errors
	ErrFileExists     = "FILE_EXISTS"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)
