package symcache

import (
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Op names the resolution operation a cached string came from.
type Op string

// Operations with cacheable string results.
const (
	OpQualifiedName       Op = "qualified_name"
	OpExtensionAccessPath Op = "extension_access_path"
	OpAccessorName        Op = "accessor_name"
	OpFileNamespace       Op = "file_namespace"
)

// Key identifies one resolved string: which runtime convention, which
// operation, and which symbol.
type Key struct {
	Runtime string
	Op      Op
	Symbol  protoreflect.FullName
}

// Valid reports whether all key components are present.
func (k Key) Valid() bool {
	return k.Runtime != "" && k.Op != "" && k.Symbol != ""
}

// String formats the key for storage. Descriptor full names never contain
// '|', so the join is unambiguous.
func (k Key) String() string {
	return k.Runtime + "|" + string(k.Op) + "|" + string(k.Symbol)
}
