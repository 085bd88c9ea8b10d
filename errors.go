package sortedlist

import "errors"

var (
	ErrAlloc = errors.New("allocation failed")

	ErrEmpty = errors.New("list is empty")

	ErrNotFound = errors.New("value not found")

	ErrInvalid = errors.New("invalid argument")

	ErrOutOfRange = errors.New("index out of range")

	ErrDuplicate = errors.New("duplicate value")

	ErrError = errors.New("unexpected error")
)

// Flag is the status of the last operation on a list.
type Flag int

const (
	FlagOK Flag = iota
	FlagAlloc
	FlagEmpty
	FlagNotFound
	FlagInvalid
	FlagOutOfRange
	FlagDuplicate
	FlagError
)

var flagNames = [...]string{
	FlagOK:         "OK",
	FlagAlloc:      "ALLOC",
	FlagEmpty:      "EMPTY",
	FlagNotFound:   "NOT_FOUND",
	FlagInvalid:    "INVALID",
	FlagOutOfRange: "OUT_OF_RANGE",
	FlagDuplicate:  "DUPLICATE",
	FlagError:      "ERROR",
}

// String
func (f Flag) String() string {
	if f < 0 || int(f) >= len(flagNames) {
		return "UNKNOWN"
	}
	return flagNames[f]
}

// FlagOf maps an error returned by the list onto its flag.
func FlagOf(err error) Flag {
	switch {
	case err == nil:
		return FlagOK
	case errors.Is(err, ErrAlloc):
		return FlagAlloc
	case errors.Is(err, ErrEmpty):
		return FlagEmpty
	case errors.Is(err, ErrNotFound):
		return FlagNotFound
	case errors.Is(err, ErrInvalid):
		return FlagInvalid
	case errors.Is(err, ErrOutOfRange):
		return FlagOutOfRange
	case errors.Is(err, ErrDuplicate):
		return FlagDuplicate
	default:
		return FlagError
	}
}
