package runtimes

import (
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Spec defines the naming convention of one target runtime
type Spec struct {
	// Identification
	ID          string `json:"id"`           // "js", "java"
	Name        string `json:"name"`         // "JavaScript", "Java"
	DisplayName string `json:"display_name"` // "JavaScript (jspb namespaced objects)"

	// Resolution hooks
	FileNamespace       func(protoreflect.FileDescriptor) string           `json:"-"`
	QualifiedName       func(protoreflect.Descriptor) (string, error)      `json:"-"`
	ExtensionAccessPath func(protoreflect.FieldDescriptor) (string, error) `json:"-"`
	AccessorName        func(protoreflect.FieldDescriptor) string          `json:"-"`

	// Status
	Enabled bool `json:"enabled"`
	Stable  bool `json:"stable"`

	// Documentation
	Description string `json:"description"`
}

// Validate checks if the runtime spec is valid
func (s *Spec) Validate() error {
	if s.ID == "" {
		return ErrInvalidRuntimeID
	}
	if s.Name == "" {
		return ErrInvalidRuntimeName
	}
	if s.FileNamespace == nil || s.QualifiedName == nil || s.ExtensionAccessPath == nil || s.AccessorName == nil {
		return ErrMissingResolutionHook
	}
	return nil
}

// Common runtime IDs
const (
	RuntimeJS   = "js"
	RuntimeJava = "java"
)
