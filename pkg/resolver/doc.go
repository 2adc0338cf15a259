// Package resolver computes the identifiers and semantic flags a
// multi-runtime code generator needs to reference protobuf-backed values.
//
// # Overview
//
// Generated code for the same schema looks different in the two target
// runtimes this package serves:
//
//   - The class-based (Java) runtime organizes generated symbols as nested
//     static members mirroring the immediate declaration scope.
//   - The namespaced-object (JS) runtime flattens everything under a fixed
//     "proto" namespace object rooted at the schema package.
//
// Both sets of names must be derivable from a single descriptor graph
// without re-parsing any .proto source. The resolver reads descriptors
// through the protoreflect API and derives plain strings and booleans; it
// owns no state, performs no I/O, and never mutates its inputs, so every
// function here is safe for concurrent use.
//
// # Naming
//
// QualifiedJSName produces a semi-qualified name: nested-container
// qualification is kept, but the schema package segment is replaced by the
// runtime namespace (which already encodes the package). For a file with
// package "foo.bar" and message "foo.bar.Outer.Inner" the result is
// "proto.foo.bar.Outer.Inner" - the package appears exactly once.
//
// Extension access paths are deliberately asymmetric between runtimes:
// JSExtensionAccessPath walks to the outermost enclosing message, while
// JavaExtensionAccessPath uses the immediate declaring scope. See the
// function docs for the exact shapes.
//
// # Presence semantics
//
// proto2 and proto3 disagree about whether a singular field tracks
// "explicitly set" separately from "holds the default". NeedsPresenceCheck
// normalizes that difference for a runtime without a native unset/default
// distinction: repeated and explicitly-defaulted fields never need a check,
// proto3 needs one only for message-typed fields, proto2 singular fields
// always do.
//
// # Errors
//
// A descriptor whose full name does not begin with its file's package
// indicates an inconsistent descriptor graph, never a runtime condition.
// Functions that would have to strip that prefix return a *ContractError
// identifying the offending symbol; they never return a misstripped name.
// Flag queries on ineligible fields (for example a wide-int annotation
// lookup on an int32 field) are not errors and simply report absence.
//
// # Related Packages
//
//   - pkg/runtimes: registry dispatching between the two naming conventions
//   - pkg/symcache: optional memoization of resolved names
package resolver
