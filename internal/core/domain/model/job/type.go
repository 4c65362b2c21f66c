package job

import (
	"moveout/internal/pkg/errs"
)

// Type distinguishes the two phases of an order a job can serve.
type Type int

const (
	// TypeUnknown is the invalid zero value.
	TypeUnknown Type = iota

	// TypeStorage is the initial pickup: student address to warehouse.
	TypeStorage

	// TypeReturn is the final delivery: warehouse back to the student.
	TypeReturn
)

// Validate checks that the Type is either Storage or Return.
func (t Type) Validate() error {
	if t != TypeStorage && t != TypeReturn {
		return errs.NewValueIsInvalidError("job type")
	}
	return nil
}

// String implements fmt.Stringer. Safe on any value, valid or not.
func (t Type) String() string {
	switch t {
	case TypeStorage:
		return "Storage"
	case TypeReturn:
		return "Return"
	default:
		return "Unknown"
	}
}
