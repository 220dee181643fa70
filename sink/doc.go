// Package sink provides Sink implementations consuming decoded field
// values: human readable printing, structured collection, predicate
// filtering and JSON export. All rendering and suppression policy lives
// here; the visitor only decodes.
package sink
