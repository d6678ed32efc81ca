package xbytes

import (
	"errors"
)

const component = "xbytes"

var (
	// ErrContractViolation is wrapped by every *ContractError.
	ErrContractViolation = errors.New("contract violation")
)

// ContractError is the panic value raised when a caller breaks a
// documented precondition.
type ContractError struct {
	Component string
	Op        string
	Msg       string
}

func (e *ContractError) Error() string {
	return e.Component + "." + e.Op + "(): " + e.Msg
}

func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}

func contractViolation(op, msg string) {
	panic(&ContractError{
		Component: component,
		Op:        op,
		Msg:       msg,
	})
}
