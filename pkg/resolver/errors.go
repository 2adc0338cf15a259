package resolver

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

var (
	// ErrNotExtension is returned when an extension access path is requested
	// for a field that is not an extension
	ErrNotExtension = errors.New("field is not an extension")
)

// ContractError reports a descriptor graph that violates the package-prefix
// invariant: a symbol's full name must begin with its declaring file's
// package. This signals an inconsistent graph supplied by the caller, not a
// condition to retry.
type ContractError struct {
	// Symbol is the full name of the offending descriptor
	Symbol protoreflect.FullName

	// Package is the declaring file's package the symbol was expected to
	// start with
	Package protoreflect.FullName
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("descriptor contract violation: expected %q to start with package %q", e.Symbol, e.Package)
}
