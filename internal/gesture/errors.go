package gesture

import "errors"

var (
	// ErrBadTemplate is returned when a template string cannot be compiled.
	ErrBadTemplate = errors.New("gesture: bad template")
	// ErrUnknownGesture is returned when a gesture name is not recognised.
	ErrUnknownGesture = errors.New("gesture: unknown gesture")
	// ErrUnknownHeadMode is returned for head mode names other than
	// "bounded" and "possessive".
	ErrUnknownHeadMode = errors.New("gesture: unknown head mode")
)
