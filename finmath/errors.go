package finmath

import "fmt"

// DomainError reports a violated mathematical precondition: the inputs
// are well-formed numbers but the formula is undefined for them
// (division by zero, negative base to a fractional power).
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// InvalidArgumentError reports a shape or type constraint violation,
// such as a NaN or infinite value where a finite number is required.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func domainErr(op, reason string) error {
	return &DomainError{Op: op, Reason: reason}
}

func invalidArgErr(op, reason string) error {
	return &InvalidArgumentError{Op: op, Reason: reason}
}
