package apperrors

import "errors"

var (
	ErrRSVPNotFound      = errors.New("rsvp not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidAttendance = errors.New("attendance must be yes, no, or maybe")
	ErrSchemaMissing     = errors.New("rsvps table does not exist")
)
