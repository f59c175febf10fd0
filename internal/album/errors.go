package album

import "errors"

var (
	// ErrNoPhoto is returned when an operation needs a current photo and the
	// album is empty.
	ErrNoPhoto = errors.New("album: no current photo")
	// ErrUnknownTag is returned by ParseTag.
	ErrUnknownTag = errors.New("album: unknown tag")
	// ErrUnsupportedImage is returned when a file is not a decodable image.
	ErrUnsupportedImage = errors.New("album: unsupported image")
)
