// Package textcase defines the catalog of recognizable text cases.
//
// A Case identifies one classification test for a piece of captured text:
// a builtin anchored pattern (URL, email, UUID, ...), a naming convention
// (camelCase, snake_case, ...), a natural language, a programming language,
// or a user-defined regex or trained model. Case identifiers are globally
// unique strings; user-defined cases carry a fixed prefix marker that
// distinguishes them from builtins.
//
// The variant of a Case is decided once, when the identifier is parsed,
// and never re-derived from the string at match time.
package textcase
