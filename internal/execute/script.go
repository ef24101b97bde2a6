package execute

import (
	"context"
	"errors"

	"github.com/dshills/selact/internal/rule"
	"github.com/dshills/selact/internal/settings"
)

// ErrUnknownLanguage is returned for a script definition whose
// language has no runner.
var ErrUnknownLanguage = errors.New("execute: unknown script language")

// execScript runs a user script. The script receives a data table and
// must define process(data) returning the result text. Script failures
// become error-flagged results rather than pipeline failures.
func (e *Executor) execScript(ctx context.Context, ru rule.Rule, env Env) Result {
	def, ok := e.settings.ScriptDef(ru.Action.ID())
	if !ok {
		return errorResult("script definition not found: " + ru.Action.ID())
	}

	out, err := runScript(ctx, def, env)
	if err != nil {
		return errorResult(err.Error())
	}
	return Result{Text: out, HasText: true}
}

func runScript(ctx context.Context, def settings.ScriptDefinition, env Env) (string, error) {
	switch def.Language {
	case settings.ScriptLua:
		return runLua(ctx, def.Code, env)
	case settings.ScriptJavaScript:
		return runExternal(ctx, "node", jsWrapper(def.Code), env)
	case settings.ScriptPython:
		return runExternal(ctx, "python3", pyWrapper(def.Code), env)
	default:
		return "", ErrUnknownLanguage
	}
}
