// Package timeline provides keyframe animation tracks: named channels of
// time-ordered nodes that are interpolated to give a value at any time.
package timeline

import "errors"

// Mutation errors
var (
	// ErrZeroTimeForbidden indicates an attempt to add, move or delete the
	// reserved node at time 0.
	ErrZeroTimeForbidden = errors.New("time 0 is reserved")

	// ErrDuplicateTime indicates that a node already exists at the given time.
	ErrDuplicateTime = errors.New("a node already exists at this time")

	// ErrNotFound indicates that no node exists at the given time.
	ErrNotFound = errors.New("no node at the given time")

	// ErrUnknownInterp indicates an interpolation tag outside the known set.
	ErrUnknownInterp = errors.New("unknown interpolation")
)

// Persistence errors
var (
	// ErrSerializationFailed indicates that a timeline could not be encoded.
	ErrSerializationFailed = errors.New("failed to save timeline")

	// ErrDeserializationFailed indicates malformed or invalid timeline data.
	ErrDeserializationFailed = errors.New("failed to load timeline")

	// ErrIO indicates that a timeline file could not be opened, read or written.
	ErrIO = errors.New("timeline file i/o failed")
)
