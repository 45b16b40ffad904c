package dxf

import (
	"errors"

	"github.com/bert/libdxf-sub001/tag"
)

// Package errors. Each is a sentinel matched with errors.Is; call
// sites wrap them with context via fmt.Errorf and %w.
var (
	// ErrUnsupportedRevision is returned when an entity is written at a
	// target revision older than the revision the entity first appeared
	// in (HATCH requires R14).
	ErrUnsupportedRevision = errors.New("dxf: entity not supported at target revision")

	// ErrMissingBasePoint is returned when a hatch is written without a
	// base point.
	ErrMissingBasePoint = errors.New("dxf: hatch base point not set")

	// ErrOutOfRange is returned by positional list operations outside
	// [0, count).
	ErrOutOfRange = errors.New("dxf: position out of range")

	// ErrEmpty is returned when removing from an empty list.
	ErrEmpty = errors.New("dxf: list is empty")

	// ErrCapacityExceeded is returned when a knot list would grow past
	// the format-defined maximum.
	ErrCapacityExceeded = errors.New("dxf: knot capacity exceeded")

	// ErrNotClosed is returned by point-in-polygon on an open loop.
	ErrNotClosed = errors.New("dxf: polyline loop is not closed")

	// ErrMalformed mirrors tag.ErrMalformed so callers can match either.
	ErrMalformed = tag.ErrMalformed

	// ErrUnexpectedEOF mirrors tag.ErrUnexpectedEOF: the stream ended
	// before the entity's terminating sentinel.
	ErrUnexpectedEOF = tag.ErrUnexpectedEOF
)
