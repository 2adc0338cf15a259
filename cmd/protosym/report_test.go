package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bufbuild/protocompile"
	"github.com/platinummonkey/protosym/pkg/runtimes"
	"github.com/platinummonkey/protosym/pkg/symcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"
)

const reportFixture = `
syntax = "proto2";

package foo.bar;

message Marker {
  extensions 1000 to 1999;
}

message Outer {
  optional uint64 big = 1 [jstype = JS_STRING];
  optional int32 plain = 2;
  repeated string tag_name = 3;

  message Inner {
    extend Marker {
      optional string inner_ext = 1001;
    }
  }
}

enum Color {
  RED = 0;
}

extend Marker {
  optional string top_ext = 1002;
}
`

func compileReportFixture(t *testing.T) []protoreflect.FileDescriptor {
	t.Helper()

	compiler := protocompile.Compiler{
		Resolver: &protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(map[string]string{
				"report.proto": reportFixture,
			}),
		},
	}

	compiled, err := compiler.Compile(context.Background(), "report.proto")
	require.NoError(t, err)

	files := make([]protoreflect.FileDescriptor, 0, len(compiled))
	for _, file := range compiled {
		files = append(files, file)
	}
	return files
}

func newTestReporter(t *testing.T, cache *symcache.Cache) *reporter {
	t.Helper()
	rep, err := newReporter(runtimes.DefaultRegistry(), []string{runtimes.RuntimeJS, runtimes.RuntimeJava}, cache, nil)
	require.NoError(t, err)
	return rep
}

func TestNewReporter_UnknownRuntime(t *testing.T) {
	_, err := newReporter(runtimes.DefaultRegistry(), []string{"cobol"}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, runtimes.ErrRuntimeNotFound)
}

func TestBuildReport(t *testing.T) {
	rep := newTestReporter(t, nil)

	report, err := rep.buildReport(compileReportFixture(t))
	require.NoError(t, err)
	require.Len(t, report.Files, 1)

	fr := report.Files[0]
	assert.Equal(t, "report.proto", fr.Path)
	assert.Equal(t, "foo.bar", fr.Package)
	assert.Equal(t, "proto.foo.bar", fr.Namespaces[runtimes.RuntimeJS])
	assert.Equal(t, "foo.bar.Report", fr.Namespaces[runtimes.RuntimeJava])

	symbols := make(map[string]*SymbolReport)
	for _, sr := range fr.Symbols {
		symbols[sr.SchemaName] = sr
	}

	outer := symbols["foo.bar.Outer"]
	require.NotNil(t, outer)
	assert.Equal(t, "message", outer.Kind)
	assert.Equal(t, "proto.foo.bar.Outer", outer.Names[runtimes.RuntimeJS])
	assert.Equal(t, "foo.bar.Report.Outer", outer.Names[runtimes.RuntimeJava])

	inner := symbols["foo.bar.Outer.Inner"]
	require.NotNil(t, inner, "nested messages are walked")

	color := symbols["foo.bar.Color"]
	require.NotNil(t, color)
	assert.Equal(t, "enum", color.Kind)
	assert.Equal(t, "proto.foo.bar.Color", color.Names[runtimes.RuntimeJS])
}

func TestBuildReport_Fields(t *testing.T) {
	rep := newTestReporter(t, nil)

	report, err := rep.buildReport(compileReportFixture(t))
	require.NoError(t, err)

	var outer *SymbolReport
	for _, sr := range report.Files[0].Symbols {
		if sr.SchemaName == "foo.bar.Outer" {
			outer = sr
		}
	}
	require.NotNil(t, outer)

	fields := make(map[string]*FieldReport)
	for _, f := range outer.Fields {
		fields[f.Name] = f
	}

	big := fields["big"]
	require.NotNil(t, big)
	assert.True(t, big.Unsigned)
	assert.True(t, big.WideIntAnnotation)
	assert.True(t, big.NeedsPresenceCheck) // proto2 singular, no default
	assert.Equal(t, "big", big.Accessors[runtimes.RuntimeJS])

	plain := fields["plain"]
	require.NotNil(t, plain)
	assert.False(t, plain.Unsigned)
	assert.False(t, plain.WideIntAnnotation)

	tags := fields["tag_name"]
	require.NotNil(t, tags)
	assert.False(t, tags.NeedsPresenceCheck)
	assert.Equal(t, "tagNameList", tags.Accessors[runtimes.RuntimeJS])
	assert.Equal(t, "tagName", tags.Accessors[runtimes.RuntimeJava])
}

func TestBuildReport_Extensions(t *testing.T) {
	rep := newTestReporter(t, nil)

	report, err := rep.buildReport(compileReportFixture(t))
	require.NoError(t, err)

	exts := make(map[string]*ExtensionReport)
	for _, er := range report.Files[0].Extensions {
		exts[er.SchemaName] = er
	}
	require.Len(t, exts, 2)

	innerExt := exts["foo.bar.Outer.Inner.inner_ext"]
	require.NotNil(t, innerExt)
	assert.Equal(t, "proto.foo.bar.Outer.innerExt", innerExt.Paths[runtimes.RuntimeJS])
	assert.Equal(t, "foo.bar.Report.Outer.Inner.innerExt.getDescriptor()", innerExt.Paths[runtimes.RuntimeJava])

	topExt := exts["foo.bar.top_ext"]
	require.NotNil(t, topExt)
	assert.Equal(t, "proto.foo.bar.topExt", topExt.Paths[runtimes.RuntimeJS])
	assert.Equal(t, "foo.bar.Report.topExt.getDescriptor()", topExt.Paths[runtimes.RuntimeJava])
}

func TestBuildReport_CacheMemoizes(t *testing.T) {
	cache := symcache.New(nil)
	rep := newTestReporter(t, cache)
	files := compileReportFixture(t)

	_, err := rep.buildReport(files)
	require.NoError(t, err)

	// Second build resolves everything from cache.
	before := cache.Stats().Misses
	_, err = rep.buildReport(files)
	require.NoError(t, err)

	stats := cache.Stats()
	assert.Equal(t, before, stats.Misses, "second walk should not miss")
	assert.Greater(t, stats.Hits, int64(0))
}

func TestReportJSONShape(t *testing.T) {
	rep := newTestReporter(t, nil)

	report, err := rep.buildReport(compileReportFixture(t))
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "files")
}
