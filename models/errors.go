package models

import "fmt"

// ErrorValidation reports malformed or missing input. Invalid carries the
// rejected tag names when the failure came from tag validation.
type ErrorValidation struct {
	Message string
	Invalid []string
}

func (e ErrorValidation) Error() string {
	if len(e.Invalid) > 0 {
		return fmt.Sprintf("%s: %v", e.Message, e.Invalid)
	}
	return e.Message
}

// ErrorNotFound reports a missing post or tag.
type ErrorNotFound struct {
	Resource string
}

func (e ErrorNotFound) Error() string {
	return e.Resource + " not found"
}

// ErrorConflict reports a uniqueness violation, e.g. a duplicate post title.
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

// ErrorInUse blocks tag deletion while posts still reference the tag.
type ErrorInUse struct {
	Message   string
	PostCount int64
}

func (e ErrorInUse) Error() string {
	return fmt.Sprintf("%s (%d posts)", e.Message, e.PostCount)
}

// ErrorInternalServer wraps an underlying store failure. The wrapped error
// is logged at the boundary and never sent to the client.
type ErrorInternalServer struct {
	Err error
}

func (e ErrorInternalServer) Error() string {
	return "internal server error: " + e.Err.Error()
}

func (e ErrorInternalServer) Unwrap() error {
	return e.Err
}
