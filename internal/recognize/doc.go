// Package recognize implements the recognizer chain and the match
// orchestrator.
//
// A Recognizer evaluates one rule's case against a text sample. The
// strategies run in a fixed priority order (skip, builtin pattern,
// natural language, programming language, custom regex, custom model);
// the case variant decides which strategy applies, so dispatch is a
// single tag switch rather than a probe down a handler list.
//
// Expensive classifications (natural-language and programming-language
// ranking) are computed at most once per text through a Detection cache
// that lives for exactly one MatchOne or MatchAll call and is shared by
// every rule in that call.
//
// A failed recognition is a normal outcome, never an error: malformed
// user patterns and unavailable classifiers degrade to "did not match"
// and are logged.
package recognize
