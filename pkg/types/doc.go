// Package types defines the Record and Note data model, source-selection
// flags, collaborator interfaces, and standard error types for the margins
// metadata system.
package types
