// Package apperr holds the error values shared by the outer layers of the service.
// The estimator itself never returns errors.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrRateTableLoad  = errors.New("rate table load failed")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// UserError carries a message meant for the person at the terminal.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
