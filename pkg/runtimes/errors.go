package runtimes

import "errors"

var (
	// ErrRuntimeNotFound is returned when a runtime is not found in the registry
	ErrRuntimeNotFound = errors.New("runtime not found")

	// ErrRuntimeAlreadyExists is returned when trying to register a duplicate runtime
	ErrRuntimeAlreadyExists = errors.New("runtime already exists")

	// ErrRuntimeDisabled is returned when trying to use a disabled runtime
	ErrRuntimeDisabled = errors.New("runtime is disabled")

	// ErrInvalidRuntimeID is returned when a runtime ID is invalid
	ErrInvalidRuntimeID = errors.New("invalid runtime ID")

	// ErrInvalidRuntimeName is returned when a runtime name is invalid
	ErrInvalidRuntimeName = errors.New("invalid runtime name")

	// ErrMissingResolutionHook is returned when a spec lacks a resolution hook
	ErrMissingResolutionHook = errors.New("missing resolution hook")
)
