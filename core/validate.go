// Package core implements the pqdate engine: validation, the ISO codec,
// calendar arithmetic, comparisons and the local-time projection.
//
// Every function is pure. Calendar fields are always read from the UTC
// projection of an instant so results never depend on time.Local, with the
// single documented exception of ToLocal.
package core

import (
	"pqdate/domain"
	"pqdate/errors"
)

// AssertValid returns errors.ErrInvalidDate unless i represents a real moment.
func AssertValid(i domain.Instant) error {
	if !i.Valid() {
		return errors.ErrInvalidDate
	}
	return nil
}

// assertAll validates instants in argument order and stops at the first failure.
func assertAll(instants ...domain.Instant) error {
	for _, i := range instants {
		if err := AssertValid(i); err != nil {
			return err
		}
	}
	return nil
}
