package errors

import "contactlog/internal/errors"

// IsPersistenceError reports whether err carries a PersistenceError anywhere in its chain
func IsPersistenceError(err error) bool {
	var persistenceErr *PersistenceError

	return errors.As(err, &persistenceErr)
}

// IsNotFound reports whether err is the contact not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrContactNotFound)
}
