// Package conv builds type directed value converters.
//
// A converter is bound at construction to a (source, destination) pair of schema types and
// forms a tree mirroring the destination type: struct, list, map and union converters own child
// converters for their substructure. Unmappable fields, unmatched union alternatives and
// incompatible category pairs degrade to null instead of failing; only malformed types and union
// tags unknown to the source type are reported as errors.
//
// Equal source and destination types yield a pass through converter unless Normalize is set, so the output
// shape follows type equality: an identical union returns the *value.Union as is, while a union differing
// only in a type parameter converts to a single element slice holding the converted payload.
//
// A converter instance keeps private scratch buffers and must not be used concurrently,
// use Cache to share converters across goroutines.
package conv
