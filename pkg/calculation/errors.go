package calculation

import (
	"errors"
	"fmt"
)

const (
	FieldFirst  = "first"
	FieldSecond = "second"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrUnknownOperation = errors.New("unknown operation")
)

// InputError описывает поле, которое не удалось разобрать как конечное число.
type InputError struct {
	Field string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s number %q", e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

type OperationError struct {
	Name string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("unknown operation: %s", e.Name)
}

func (e *OperationError) Unwrap() error {
	return ErrUnknownOperation
}
