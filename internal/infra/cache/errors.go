package cache

import (
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/errors"
)

// storeUnavailable classifies a transport failure so it is never mistaken for a missing record.
func storeUnavailable(op string, err error) error {
	return errors.Join(domainerrors.ErrStoreUnavailable.WrapMessage(op), err)
}
