package errors

// ErrorUnknown is returned in place of errors that are not meant for the
// user. The underlying error is logged.
type ErrorUnknown struct{}

func (eu *ErrorUnknown) Error() string {
	return "something went wrong, please try again"
}
