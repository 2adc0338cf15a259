package resolver

import (
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

func fileOptions(file protoreflect.FileDescriptor) *descriptorpb.FileOptions {
	opts, _ := file.Options().(*descriptorpb.FileOptions)
	return opts
}

// JavaPackage returns the Java package generated code for file lives in:
// the java_package option when set, else the proto package.
func JavaPackage(file protoreflect.FileDescriptor) string {
	if opts := fileOptions(file); opts != nil && opts.JavaPackage != nil {
		return opts.GetJavaPackage()
	}
	return string(file.Package())
}

// JavaOuterClassName returns the wrapper class holding file-level generated
// symbols: the java_outer_classname option when set, else the camelized
// file basename, suffixed with "OuterClass" when a top-level declaration
// already claims that name.
func JavaOuterClassName(file protoreflect.FileDescriptor) string {
	if opts := fileOptions(file); opts != nil && opts.JavaOuterClassname != nil {
		return opts.GetJavaOuterClassname()
	}
	base := string(file.Path())
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(base, ".proto")
	name := underscoresToCapitalizedCamel(strings.Map(func(r rune) rune {
		if r == '.' || r == '-' {
			return '_'
		}
		return r
	}, base))
	if hasTopLevelDeclaration(file, name) {
		name += "OuterClass"
	}
	return name
}

func hasTopLevelDeclaration(file protoreflect.FileDescriptor, name string) bool {
	n := protoreflect.Name(name)
	if file.Messages().ByName(n) != nil || file.Enums().ByName(n) != nil {
		return true
	}
	return file.Services().ByName(n) != nil
}

func javaMultipleFiles(file protoreflect.FileDescriptor) bool {
	opts := fileOptions(file)
	return opts != nil && opts.GetJavaMultipleFiles()
}

// QualifiedJavaName returns the fully-qualified Java class name of a
// message or enum. Nested declarations become nested classes; unless
// java_multiple_files is set, top-level declarations nest inside the
// file's outer class.
func QualifiedJavaName(d protoreflect.Descriptor) (string, error) {
	file := d.ParentFile()
	rel, err := relativeSchemaName(d)
	if err != nil {
		return "", err
	}
	prefix := JavaPackage(file)
	if !javaMultipleFiles(file) {
		if prefix != "" {
			prefix += "."
		}
		prefix += JavaOuterClassName(file)
	}
	if prefix == "" {
		return strings.TrimPrefix(rel, "."), nil
	}
	return prefix + rel, nil
}

// JavaExtensionAccessPath returns the compile-time-resolvable static member
// path for an extension's descriptor accessor, "<holder>.<field>.getDescriptor()".
// The holder is the IMMEDIATE declaring scope (not the outermost ancestor,
// unlike the JS path): generated Java nests extension holders exactly where
// they were declared. A top-level extension's holder is the file's outer
// class.
func JavaExtensionAccessPath(fd protoreflect.FieldDescriptor) (string, error) {
	if !fd.IsExtension() {
		return "", ErrNotExtension
	}
	var holder string
	if scope := extensionScope(fd); scope != nil {
		name, err := QualifiedJavaName(scope)
		if err != nil {
			return "", err
		}
		holder = name
	} else {
		holder = JavaPackage(fd.ParentFile())
		if holder != "" {
			holder += "."
		}
		holder += JavaOuterClassName(fd.ParentFile())
	}
	return holder + "." + ToLowerCamel(string(fd.Name())) + ".getDescriptor()", nil
}
