package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err with markErr so Is(err, markErr) holds while the original
// cause stays inspectable via Unwrap.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err carries reference in its chain or marks. Marks
// applied by Mark are invisible to the standard library errors.Is, so every
// sentinel match on a marked error must go through this.
func Is(err error, reference error) bool {
	return cr.Is(err, reference)
}
