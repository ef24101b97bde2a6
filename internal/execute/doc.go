// Package execute implements the executor chain.
//
// An Executor performs the action of one matched rule against the
// captured selection. Strategies run in a fixed priority order
// (default/no-action, script, prompt, searcher, builtin); the action
// variant decides which strategy handles the call, and exactly one
// does.
//
// Every executor that produces a textual result goes through the same
// routing: a preview rule returns the result to the caller without
// applying it; otherwise the result is routed per the rule's output
// mode (replace in place, popup, or discard), and a history entry is
// appended when the rule asks for one.
//
// Failures of external collaborators (script runtimes, AI providers,
// openers) degrade to error-flagged results or logged warnings; nothing
// in this package is fatal to the dispatch pipeline.
package execute
