package abspath

import (
	"errors"
)

var (
	ErrCurrentIsRelative = errors.New("current directory path is relative")
	ErrUnsupportedPrefix = errors.New("unsupported path prefix")
	ErrIOError           = errors.New("io error")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func newCurrentIsRelativeError(path string) error {
	return &wrapError{
		underlying: ErrCurrentIsRelative,
		msg:        path,
	}
}

func newUnsupportedPrefixError(path string) error {
	return &wrapError{
		underlying: ErrUnsupportedPrefix,
		msg:        path,
	}
}

func newIOError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrIOError,
		msg:        msg,
		cause:      cause,
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}
