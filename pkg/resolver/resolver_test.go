package resolver

import (
	"context"
	"testing"

	"github.com/bufbuild/protocompile"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// compileTestFile compiles an in-memory proto source into a file descriptor.
func compileTestFile(t *testing.T, path string, sources map[string]string) protoreflect.FileDescriptor {
	t.Helper()

	compiler := protocompile.Compiler{
		Resolver: &protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(sources),
		},
	}

	files, err := compiler.Compile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, files, 1)
	return files[0]
}

const scopesProto = `
syntax = "proto2";

package foo.bar;

message Marker {
  extensions 1000 to 1999;
}

message Outer {
  optional int32 plain = 1;

  message Inner {
    message Deep {
      extend Marker {
        optional string deep_ext = 1001;
      }
    }

    extend Marker {
      optional string inner_ext = 1002;
    }
  }

  extend Marker {
    optional string outer_ext = 1003;
  }
}

extend Marker {
  optional string top_ext = 1004;
  repeated int32 top_reps = 1005;
}
`

func compileScopesFile(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()
	return compileTestFile(t, "scopes.proto", map[string]string{"scopes.proto": scopesProto})
}

func mustMessage(t *testing.T, file protoreflect.FileDescriptor, path ...protoreflect.Name) protoreflect.MessageDescriptor {
	t.Helper()
	md := file.Messages().ByName(path[0])
	require.NotNil(t, md, "message %s not found", path[0])
	for _, name := range path[1:] {
		md = md.Messages().ByName(name)
		require.NotNil(t, md, "nested message %s not found", name)
	}
	return md
}
