package commands

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
)

// CancelStaleOrdersCommand represents a request to cancel every order that
// has been sitting in the received status longer than the given age.
// Driven by the background cleanup job rather than a user action.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a stale-order cancellation command.
// The maximum age must be positive.
func NewCancelStaleOrdersCommand(maxAge time.Duration) (CancelStaleOrdersCommand, error) {
	command := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setMaxAge(maxAge); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long an order may stay in the received status before
// it is considered stale.
func (c CancelStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *CancelStaleOrdersCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxAge is invalid", fmt.Errorf("%s is not a positive duration", maxAge))
	}

	c.maxAge = maxAge
	return nil
}
