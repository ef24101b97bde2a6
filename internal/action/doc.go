// Package action defines the catalog of dispatchable actions.
//
// An Action identifies one side-effecting operation bound to a matched
// case: a builtin text transform or side effect, a user script, an AI
// prompt, or a web search. Like cases, user-defined action identifiers
// carry a fixed prefix marker and the variant is decided once at parse
// time.
//
// Builtin transforms are pure text -> text functions; side-effecting
// builtins (copy, open-urls, open-paths) are marked NoResult and handled
// by the executor, which owns clipboard and opener access.
package action
