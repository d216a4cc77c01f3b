// Package generator turns a loaded option set into the three derived
// artifacts that would otherwise be hand-maintained in parallel: the
// default configuration source file (Config.zig), the JSON schema, and
// the options table inside the README.
//
// The three generators are independent: each reads the same immutable
// option slice and writes to its own target, and a failure in one never
// rolls back another. Option order from the descriptor document is
// preserved in every artifact, which keeps repeated runs byte-identical
// and diffs reviewable.
//
// Only schema generation enforces the closed type vocabulary (see
// [MapType]); the Config.zig generator emits type tokens verbatim.
package generator
