package plan

import (
	"fmt"
	"strings"
)

// ErrPlanNotFound indicates that a stored plan does not exist
type ErrPlanNotFound struct {
	Ref string
}

func (e *ErrPlanNotFound) Error() string {
	return fmt.Sprintf("plan not found: %s", e.Ref)
}

// ErrInvalidDocument collects every problem found while validating a document
type ErrInvalidDocument struct {
	Problems []string
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid plan:\n  %s", strings.Join(e.Problems, "\n  "))
}

// ErrBuildingSpec reports a building spec that cannot be turned into a building
type ErrBuildingSpec struct {
	ID  string
	Err error
}

func (e *ErrBuildingSpec) Error() string {
	return fmt.Sprintf("building %q: %v", e.ID, e.Err)
}

func (e *ErrBuildingSpec) Unwrap() error { return e.Err }
