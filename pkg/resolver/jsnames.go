package resolver

import (
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// jsNamespaceRoot is the fixed root token every generated JS symbol lives
// under, matching the jspb convention.
const jsNamespaceRoot = "proto"

// JSNamespace returns the JS namespace for symbols declared in file:
// "proto.<package>", or just "proto" when the file has no package.
func JSNamespace(file protoreflect.FileDescriptor) string {
	if pkg := string(file.Package()); pkg != "" {
		return jsNamespaceRoot + "." + pkg
	}
	return jsNamespaceRoot
}

// relativeSchemaName returns the dot-prefixed portion of d's full name that
// follows its file's package. The full name must begin with the package;
// anything else is an inconsistent descriptor graph.
func relativeSchemaName(d protoreflect.Descriptor) (string, error) {
	pkg := string(d.ParentFile().Package())
	full := string(d.FullName())
	if !strings.HasPrefix(full, pkg) {
		return "", &ContractError{Symbol: d.FullName(), Package: d.ParentFile().Package()}
	}
	if pkg == "" {
		return "." + full, nil
	}
	// The remainder already begins with "." by descriptor naming convention.
	return full[len(pkg):], nil
}

// QualifiedJSName returns the semi-qualified JS name of a message or enum:
// nested-container qualification under the file's JS namespace, with the
// schema package segment appearing only inside the namespace itself.
func QualifiedJSName(d protoreflect.Descriptor) (string, error) {
	rel, err := relativeSchemaName(d)
	if err != nil {
		return "", err
	}
	return JSNamespace(d.ParentFile()) + rel, nil
}

// FieldAccessorName returns the generated JS accessor name for a field:
// lowerCamel of the declared name, with a "List" suffix for repeated
// fields. The same convention applies to regular and extension fields.
func FieldAccessorName(fd protoreflect.FieldDescriptor) string {
	name := ToLowerCamel(string(fd.Name()))
	if fd.Cardinality() == protoreflect.Repeated {
		return name + "List"
	}
	return name
}

// extensionScope returns the message an extension field is declared inside,
// or nil for a file-scoped extension.
func extensionScope(fd protoreflect.FieldDescriptor) protoreflect.MessageDescriptor {
	if scope, ok := fd.Parent().(protoreflect.MessageDescriptor); ok {
		return scope
	}
	return nil
}

// outermostScope walks the containing-message chain up from scope to the
// message with no further container. Bounded by schema nesting depth.
func outermostScope(scope protoreflect.MessageDescriptor) protoreflect.MessageDescriptor {
	for {
		parent, ok := scope.Parent().(protoreflect.MessageDescriptor)
		if !ok {
			return scope
		}
		scope = parent
	}
}

// JSExtensionAccessPath returns the JS path for referencing an extension
// field's accessor. For an extension declared inside a message the path
// hangs off the OUTERMOST enclosing message, because jspb flattens
// extensions under the outermost namespace object; a top-level extension
// hangs directly off the file's JS namespace.
func JSExtensionAccessPath(fd protoreflect.FieldDescriptor) (string, error) {
	if !fd.IsExtension() {
		return "", ErrNotExtension
	}
	if scope := extensionScope(fd); scope != nil {
		name, err := QualifiedJSName(outermostScope(scope))
		if err != nil {
			return "", err
		}
		return name + "." + FieldAccessorName(fd), nil
	}
	return JSNamespace(fd.ParentFile()) + "." + FieldAccessorName(fd), nil
}

// JSExtensionImport returns the symbol to goog.require for an extension:
// the outermost enclosing message for a scoped extension, otherwise the
// same path JSExtensionAccessPath produces for a top-level one.
func JSExtensionImport(fd protoreflect.FieldDescriptor) (string, error) {
	if !fd.IsExtension() {
		return "", ErrNotExtension
	}
	if scope := extensionScope(fd); scope != nil {
		return QualifiedJSName(outermostScope(scope))
	}
	return JSNamespace(fd.ParentFile()) + "." + FieldAccessorName(fd), nil
}
