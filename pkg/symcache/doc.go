// Package symcache memoizes resolved symbol strings.
//
// Resolution itself is pure and cheap, so no caller needs this for
// correctness; it exists for callers that resolve the same descriptors
// thousands of times while rendering, such as the report walker in
// cmd/protosym.
//
// Keys combine the runtime ID, the operation, and the symbol's full name.
// A descriptor's full name identifies it within one descriptor graph; a
// process mixing unrelated graphs with colliding full names should use one
// cache per graph.
package symcache
