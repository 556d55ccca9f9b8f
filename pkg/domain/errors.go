package domain

import "errors"

// ErrIndexOutOfRange is returned when a string index exceeds the number of
// strings of the requested length over an alphabet.
var ErrIndexOutOfRange = errors.New("string index out of range")

// ErrGenomeNotFound is returned when a genome key cannot be found in a
// population store.
var ErrGenomeNotFound = errors.New("genome not found")

// ErrInvalidEncoding is returned when a textual genome encoding cannot be
// decoded.
var ErrInvalidEncoding = errors.New("invalid genome encoding")
