// Package value provides producer side value representations consumed by converters:
// tagged union values, Go struct rows read through precompiled xunsafe accessors,
// and generic list and map access with typed fast paths and a reflection fallback.
package value
