package cli

import (
	"errors"
	"fmt"

	"github.com/ade-labs/ade/internal/registry"
	"github.com/ade-labs/ade/internal/scaffold"
)

// Process exit codes, one per failure kind.
const (
	ExitOK               = 0
	ExitError            = 1
	ExitUsage            = 2
	ExitUnknownStack     = 3
	ExitUnknownExtension = 4
	ExitInvalidDomain    = 5
	ExitRegistryLoad     = 6
	ExitFilesystem       = 7
	ExitValidation       = 8
)

// errValidationFailed is returned by validate when the tree breaks the layout rules.
var errValidationFailed = errors.New("project structure is invalid")

// usageError marks bad flags or arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &ue):
		return ExitUsage
	case errors.Is(err, scaffold.ErrInvalidDomain):
		return ExitInvalidDomain
	case errors.Is(err, scaffold.ErrUnknownStack):
		return ExitUnknownStack
	case errors.Is(err, scaffold.ErrUnknownExtension):
		return ExitUnknownExtension
	case errors.Is(err, registry.ErrLoad):
		return ExitRegistryLoad
	case errors.Is(err, scaffold.ErrFilesystem):
		return ExitFilesystem
	case errors.Is(err, errValidationFailed):
		return ExitValidation
	default:
		return ExitError
	}
}
