package cli

import "errors"

// Argument errors.
var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrTooManyArgs      = errors.New("too many arguments")
	ErrConflictingArgs  = errors.New("conflicting arguments")
	ErrKeyRequired      = errors.New("at least one task key is required")
	ErrPageRequired     = errors.New("page is required")
	ErrPageNameReserved = errors.New("page name is reserved")
	ErrTaskRefRequired  = errors.New("task ID or #position is required")
	ErrAmbiguousTask    = errors.New("task ID prefix is ambiguous")
	ErrIDPrefixTooShort = errors.New("task ID prefix needs at least 4 characters")
	ErrFileRequired     = errors.New("file is required")
	ErrStdinUnavailable = errors.New("stdin is not available")
	ErrUnknownReference = errors.New("unknown reference table")
)
