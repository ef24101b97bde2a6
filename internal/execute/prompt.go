package execute

import (
	"context"

	"go.uber.org/zap"

	"github.com/dshills/selact/internal/execute/provider"
	"github.com/dshills/selact/internal/history"
	"github.com/dshills/selact/internal/rule"
)

// execPrompt runs an AI prompt action. The popup is shown and the
// history entry recorded at invocation time; the response streams into
// both afterwards. Identical rendered prompts are served from the
// response cache without touching the provider.
func (e *Executor) execPrompt(ctx context.Context, ru rule.Rule, env Env) Result {
	def, ok := e.settings.PromptDef(ru.Action.ID())
	if !ok {
		return e.route(ru, env, errorResult("prompt definition not found: "+ru.Action.ID()))
	}

	message := Render(def.Template, env)

	if ru.Preview {
		// Preview shows the rendered prompt without starting a stream.
		return e.route(ru, env, Result{Text: message, HasText: true})
	}

	entry := e.newEntry(ru, env)
	entry.Provider = def.Provider
	entry.Model = def.Model

	if e.persist != nil {
		if cached, hit, err := e.persist.CacheGet(message); err != nil {
			e.log.Warn("response cache read failed", zap.Error(err))
		} else if hit {
			entry.Response = cached
			res := Result{Text: cached, HasText: true, Entry: &entry}
			e.finishPrompt(ru, entry)
			return res
		}
	}

	prov, ok := e.providers[def.Provider]
	if !ok {
		return e.route(ru, env, errorResult("provider not configured: "+def.Provider))
	}

	sess, err := prov.Stream(ctx, provider.Request{
		Model:   def.Model,
		System:  def.System,
		Message: message,
	})
	if err != nil {
		return e.route(ru, env, errorResult(err.Error()))
	}

	e.finishPrompt(ru, entry)
	go e.consume(sess, entry.ID, message)

	return Result{Entry: &entry, Abort: sess.Abort}
}

// finishPrompt shows the entry and records it. Prompt rules are
// normalized to popup output so the stream has somewhere to land.
func (e *Executor) finishPrompt(ru rule.Rule, entry history.Entry) {
	if e.surface != nil {
		e.surface.ShowPopup(entry)
	}
	if ru.SaveHistory {
		e.record(entry)
	}
}

// consume drains a streaming session, forwarding chunks to the surface
// and annotating history and the response cache on clean completion.
func (e *Executor) consume(sess *provider.Session, entryID, message string) {
	for chunk := range sess.Chunks() {
		if e.surface != nil {
			e.surface.AppendResponse(entryID, chunk)
		}
	}

	if err := sess.Err(); err != nil {
		e.log.Warn("response stream failed", zap.Error(err))
		return
	}

	text := sess.Text()
	if e.ring != nil {
		e.ring.Annotate(entryID, text)
	}
	if e.persist != nil {
		if err := e.persist.Annotate(entryID, text); err != nil {
			e.log.Warn("history annotate failed", zap.Error(err))
		}
		if err := e.persist.CacheSet(message, text); err != nil {
			e.log.Warn("response cache write failed", zap.Error(err))
		}
	}
}
