package pantry

import (
	"errors"
	"fmt"
)

var (
	// ErrConversion is matched by every *ConversionError.
	ErrConversion = errors.New("conversion error")
	// ErrInvalidIngredient reports an ingredient that violates its invariants.
	ErrInvalidIngredient = errors.New("invalid ingredient")
	// ErrKindMismatch reports an attempt to merge a mass batch with a volume batch.
	ErrKindMismatch = errors.New("cannot merge mass and volume")
	// ErrMergeRejected reports two ingredients that are not the same batch.
	ErrMergeRejected = errors.New("ingredients cannot be merged")
	// ErrInvalidName reports a blank storage name.
	ErrInvalidName = errors.New("invalid storage name")
	// ErrDuplicateName reports a storage name already in use, case-insensitively.
	ErrDuplicateName = errors.New("storage already exists")
	// ErrUnknownStorage reports a storage name that does not exist.
	ErrUnknownStorage = errors.New("no such storage")
	// ErrEmptyHistory reports a GoBack with nothing to go back to.
	ErrEmptyHistory = errors.New("navigation history is empty")
	// ErrUnknownIngredient reports an ingredient or batch that is not stored.
	ErrUnknownIngredient = errors.New("no such ingredient")
	// ErrNoCurrentLedger reports an operation that needs a selected storage.
	ErrNoCurrentLedger = errors.New("no storage selected")
)

// ConversionError reports a conversion between units of different kinds.
type ConversionError struct {
	From, To Unit
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s (%s) to %s (%s)", e.From, e.From.Kind(), e.To, e.To.Kind())
}

// Is makes errors.Is(err, ErrConversion) true for any *ConversionError.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }
