package resolver

import (
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// IsUnsigned reports whether the field carries an unsigned integer on the
// wire: fixed32, fixed64, uint32 or uint64. Signed and zigzag kinds
// (including int64/sint64) are not unsigned.
func IsUnsigned(fd protoreflect.FieldDescriptor) bool {
	switch fd.Kind() {
	case protoreflect.Fixed32Kind, protoreflect.Fixed64Kind,
		protoreflect.Uint32Kind, protoreflect.Uint64Kind:
		return true
	default:
		return false
	}
}

// wideIntKind reports whether the field's kind carries 64 bits of integer,
// the only kinds eligible for a jstype annotation.
func wideIntKind(fd protoreflect.FieldDescriptor) bool {
	switch fd.Kind() {
	case protoreflect.Int64Kind, protoreflect.Sfixed64Kind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind,
		protoreflect.Sint64Kind:
		return true
	default:
		return false
	}
}

func jstypeOption(fd protoreflect.FieldDescriptor) *descriptorpb.FieldOptions_JSType {
	opts, ok := fd.Options().(*descriptorpb.FieldOptions)
	if !ok || opts == nil {
		return nil
	}
	return opts.Jstype
}

// HasWideIntAnnotation reports whether the field is a 64-bit integer kind
// with an explicit jstype annotation in its options. The annotation value
// is not validated against the field's bit width.
func HasWideIntAnnotation(fd protoreflect.FieldDescriptor) bool {
	return wideIntKind(fd) && jstypeOption(fd) != nil
}

// WideIntAnnotation returns the field's jstype annotation value and whether
// one was declared. Absence is a neutral result, not an error, and the
// lookup is not gated on the field's kind.
func WideIntAnnotation(fd protoreflect.FieldDescriptor) (descriptorpb.FieldOptions_JSType, bool) {
	jstype := jstypeOption(fd)
	if jstype == nil {
		return 0, false
	}
	return *jstype, true
}

func messageTyped(fd protoreflect.FieldDescriptor) bool {
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return true
	default:
		return false
	}
}

// NeedsPresenceCheck reports whether generated rendering code must check
// for explicit presence to emulate null/undefined semantics of a runtime
// that cannot distinguish "unset" from "holds the default".
//
// Repeated fields and fields with an explicit default never need the check.
// Under proto3 only message-typed fields retain explicit presence; under
// proto2 every remaining singular field does.
func NeedsPresenceCheck(fd protoreflect.FieldDescriptor) bool {
	if fd.HasDefault() || fd.Cardinality() == protoreflect.Repeated {
		return false
	}
	if fd.ParentFile().Syntax() == protoreflect.Proto3 {
		return messageTyped(fd)
	}
	return true
}
