package iterator

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError is the panic value raised when an adapter or consumer is called
// with an argument outside its contract. Op names the operation.
type ArgumentError struct {
	Op    string
	Value any
	Want  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("expected %s in %s, but got %v", e.Want, e.Op, e.Value)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func requireNonNegative(op string, n int) {
	if n < 0 {
		panic(&ArgumentError{Op: op, Value: n, Want: "non-negative"})
	}
}

func requireNonZero(op string, n int) {
	if n == 0 {
		panic(&ArgumentError{Op: op, Value: n, Want: "non-zero"})
	}
}

func requirePositive(op string, n int) {
	requireNonNegative(op, n)
	requireNonZero(op, n)
}
