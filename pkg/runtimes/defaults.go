package runtimes

import (
	"github.com/platinummonkey/protosym/pkg/resolver"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// DefaultSpecs returns the built-in runtime conventions.
func DefaultSpecs() []*Spec {
	return []*Spec{
		{
			ID:                  RuntimeJS,
			Name:                "JavaScript",
			DisplayName:         "JavaScript (jspb namespaced objects)",
			FileNamespace:       resolver.JSNamespace,
			QualifiedName:       resolver.QualifiedJSName,
			ExtensionAccessPath: resolver.JSExtensionAccessPath,
			AccessorName:        resolver.FieldAccessorName,
			Enabled:             true,
			Stable:              true,
			Description:         "Flattens generated symbols under the proto namespace object; extensions hang off the outermost declaring scope.",
		},
		{
			ID:                  RuntimeJava,
			Name:                "Java",
			DisplayName:         "Java (generated nested classes)",
			FileNamespace:       javaFileNamespace,
			QualifiedName:       resolver.QualifiedJavaName,
			ExtensionAccessPath: resolver.JavaExtensionAccessPath,
			AccessorName:        javaAccessorName,
			Enabled:             true,
			Stable:              true,
			Description:         "Mirrors declaration scope as nested static members; extensions hang off their immediate declaring scope.",
		},
	}
}

// DefaultRegistry returns a registry with the built-in runtimes registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, spec := range DefaultSpecs() {
		// Built-in specs always validate.
		_ = r.Register(spec)
	}
	return r
}

func javaFileNamespace(file protoreflect.FileDescriptor) string {
	pkg := resolver.JavaPackage(file)
	outer := resolver.JavaOuterClassName(file)
	if pkg == "" {
		return outer
	}
	return pkg + "." + outer
}

// javaAccessorName is the generated Java member name for a field; Java does
// not add the repeated "List" suffix the JS convention uses.
func javaAccessorName(fd protoreflect.FieldDescriptor) string {
	return resolver.ToLowerCamel(string(fd.Name()))
}
