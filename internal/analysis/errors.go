package analysis

import "errors"

var (
	// ErrInvalidQuantity is returned by UnitPrice when the normalized package
	// quantity is not positive. Callers exclude such products from unit-price
	// comparisons.
	ErrInvalidQuantity = errors.New("invalid package quantity")

	// ErrInvalidArgument marks caller input the engine cannot act on.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrInvalidRequest is returned when a request field fails validation.
// It matches ErrInvalidArgument with errors.Is.
type ErrInvalidRequest struct {
	Field  string
	Reason string
}

func (e ErrInvalidRequest) Error() string {
	return e.Field + ": " + e.Reason
}

func (e ErrInvalidRequest) Unwrap() error {
	return ErrInvalidArgument
}
