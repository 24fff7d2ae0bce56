// Package deep addresses nested fields inside Record structures through
// dot-separated path expressions: contains/get with short-circuit on missing
// links, result-type branching, and set with auto-creation of intermediate
// records.
package deep
