package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is classification.
var (
	ErrInvalidDomain    = errors.New("invalid domain")
	ErrUnknownStack     = errors.New("unknown stack")
	ErrUnknownExtension = errors.New("unknown extension")
	ErrFilesystem       = errors.New("filesystem error")
)

// InvalidDomainError reports a domain that is not a safe path segment.
type InvalidDomainError struct {
	Domain string
	Reason string
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("invalid domain %q: %s", e.Domain, e.Reason)
}

func (e *InvalidDomainError) Is(target error) bool { return target == ErrInvalidDomain }

// UnknownStackError reports a (language, framework, service) triple with no
// registry entry.
type UnknownStackError struct {
	Language  string
	Framework string
	Service   string
}

func (e *UnknownStackError) Error() string {
	return fmt.Sprintf("unknown stack: language=%q framework=%q service=%q", e.Language, e.Framework, e.Service)
}

func (e *UnknownStackError) Is(target error) bool { return target == ErrUnknownStack }

// UnknownExtensionError names the first requested extension missing from the registry.
type UnknownExtensionError struct {
	Name string
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("unknown extension %q", e.Name)
}

func (e *UnknownExtensionError) Is(target error) bool { return target == ErrUnknownExtension }

// FilesystemError is one failed path during Apply.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

func (e *FilesystemError) Is(target error) bool { return target == ErrFilesystem }
