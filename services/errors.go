package services

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrConnection means the store was unreachable or refused us.
	ErrConnection = errors.New("failed to connect to the database")
	// ErrQuery means a statement failed on an open connection.
	ErrQuery = errors.New("failed to retrieve services")
)

// SetupError reports a failed provisioning step. It is never sent over HTTP.
type SetupError struct {
	Op  string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("setup %s: %v", e.Op, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}
