// Package tag implements the rson tag registry and the semantics of
// the reserved tag names.
//
// A tag is an @name prefix selecting an extended interpretation of
// the literal value that follows it. Reserved names (set, dict,
// datetime, base64, ...) are interpreted by Apply; any other name is
// looked up in a Registry, which either decodes it into an
// application value or wraps it as an opaque ir.TaggedKind value.
//
// The registry is an explicit object passed to parse and encode
// calls rather than process-global state, so different registries can
// be used concurrently.
package tag
