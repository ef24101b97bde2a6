// Package shortcut owns the trigger-to-rules registry and the dispatch
// pipeline.
//
// A Shortcut binds one trigger (a keyboard combination or a pointer
// gesture) to an ordered rule list and an execution mode. Keyboard
// triggers are registered with an external hotkey Backend when their
// first rule arrives and released when their last rule leaves; pointer
// gestures are always live and never bound.
//
// Dispatch runs blacklist filtering, then recognition over the
// shortcut's rules, then execution: quiet mode executes the first
// matching rule immediately, toolbar mode surfaces every match for
// interactive selection.
package shortcut
