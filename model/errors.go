package model

import "errors"

// Error kinds returned by the music packages. Call sites wrap them with
// context, so compare with errors.Is.
var (
	ErrMalformedNotation         = errors.New("malformed notation")
	ErrUnrepresentableAccidental = errors.New("accidental out of range")
	ErrModeMismatch              = errors.New("mode mismatch")
	ErrQualityConflict           = errors.New("quality conflict")
	ErrInvalidDegree             = errors.New("invalid scale degree")
	ErrAddedNoteMissing          = errors.New("added note missing")
)
