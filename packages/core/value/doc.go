// Package value implements the generic JSON-like tree that the resolution
// engine walks.
//
// A Value is one of null, bool, number, string, array or object. Objects are
// backed by Map, which keeps keys in insertion order, so a document decoded
// with Parse re-encodes with its keys in the original order. Records are
// converted to a Value at the boundary (via their JSON form), transformed, and
// converted back.
package value
