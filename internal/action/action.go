package action

import (
	"errors"
	"fmt"
	"strings"
)

// Identifier prefixes marking user-defined actions.
const (
	ScriptPrefix   = "script-"
	PromptPrefix   = "prompt-"
	SearcherPrefix = "searcher-"
)

// Parse errors.
var (
	ErrUnknownAction = errors.New("action: unknown action identifier")
)

// Kind discriminates the Action variants.
type Kind int

const (
	// KindNone performs no action beyond opening the main window.
	KindNone Kind = iota

	// KindBuiltin is a builtin transform or side effect from the catalog.
	KindBuiltin

	// KindScript runs a user-defined script.
	KindScript

	// KindPrompt sends a rendered template to an AI provider.
	KindPrompt

	// KindSearcher opens a URL template in a browser.
	KindSearcher
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBuiltin:
		return "builtin"
	case KindScript:
		return "script"
	case KindPrompt:
		return "prompt"
	case KindSearcher:
		return "searcher"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Action identifies one dispatchable operation. The zero value is None.
// Action is comparable; the orchestrator uses it directly as a
// deduplication key.
type Action struct {
	kind Kind
	id   string
}

// None returns the empty action.
func None() Action {
	return Action{}
}

// Builtin returns the action for a builtin catalog id.
func Builtin(id string) Action {
	return Action{kind: KindBuiltin, id: id}
}

// Script returns the action for a user script id.
func Script(id string) Action {
	if !strings.HasPrefix(id, ScriptPrefix) {
		id = ScriptPrefix + id
	}
	return Action{kind: KindScript, id: id}
}

// Prompt returns the action for a user prompt id.
func Prompt(id string) Action {
	if !strings.HasPrefix(id, PromptPrefix) {
		id = PromptPrefix + id
	}
	return Action{kind: KindPrompt, id: id}
}

// Searcher returns the action for a user searcher id.
func Searcher(id string) Action {
	if !strings.HasPrefix(id, SearcherPrefix) {
		id = SearcherPrefix + id
	}
	return Action{kind: KindSearcher, id: id}
}

// Parse resolves a stored action identifier into its tagged variant.
func Parse(id string) (Action, error) {
	switch {
	case id == "":
		return None(), nil
	case strings.HasPrefix(id, ScriptPrefix):
		return Action{kind: KindScript, id: id}, nil
	case strings.HasPrefix(id, PromptPrefix):
		return Action{kind: KindPrompt, id: id}, nil
	case strings.HasPrefix(id, SearcherPrefix):
		return Action{kind: KindSearcher, id: id}, nil
	case IsBuiltin(id):
		return Action{kind: KindBuiltin, id: id}, nil
	default:
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, id)
	}
}

// Kind returns the variant discriminator.
func (a Action) Kind() Kind { return a.kind }

// ID returns the stored identifier; empty for None, prefixed for
// user-defined variants.
func (a Action) ID() string { return a.id }

// IsNone reports whether this is the empty action.
func (a Action) IsNone() bool { return a.kind == KindNone }

// NoResult reports whether the action produces no textual result. None
// and the side-effecting builtins never produce text; scripts, prompts
// and transforms do. Searchers open a browser and produce nothing to
// route.
func (a Action) NoResult() bool {
	switch a.kind {
	case KindNone, KindSearcher:
		return true
	case KindBuiltin:
		b, ok := builtins[a.id]
		return ok && b.NoResult
	default:
		return false
	}
}

// String returns the identifier, or "none" for the empty action.
func (a Action) String() string {
	if a.kind == KindNone {
		return "none"
	}
	return a.id
}
