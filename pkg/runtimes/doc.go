// Package runtimes maintains the registry of target-runtime naming
// conventions the symbol resolver can emit for.
//
// Each runtime is described by a Spec carrying the resolution hooks for
// that runtime's convention (namespace, qualified names, extension access
// paths, accessor names). Keeping one explicit code path per runtime in
// pkg/resolver and only the dispatch table here keeps the asymmetric
// immediate-vs-outermost extension scope rule auditable.
//
// DefaultRegistry returns the two built-in runtimes: "js" (namespaced
// object) and "java" (class based).
package runtimes
