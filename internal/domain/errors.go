package domain

import "errors"

var (
	ErrNoRowsAffected = errors.New("no rows affected")
	ErrIDNotFound     = errors.New("id does not exist")
	ErrInvalidInput   = errors.New("invalid input")
)

// PersistenceError is returned by every repository operation that fails.
// Err is either one of the sentinels above or the driver error, unclassified.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistenceError reports whether err is or wraps a *PersistenceError.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
