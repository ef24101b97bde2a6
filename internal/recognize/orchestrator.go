package recognize

import (
	"context"

	"go.uber.org/zap"

	"github.com/dshills/selact/internal/action"
	"github.com/dshills/selact/internal/rule"
)

// MatchOne returns the first rule (in list order) whose case matches the
// text. The boolean is false when nothing matches; callers treat that as
// "no applicable rule", not an error.
func (r *Recognizer) MatchOne(ctx context.Context, text string, rules []rule.Rule) (rule.Rule, bool) {
	det := NewDetection()
	for _, ru := range rules {
		if r.Recognize(ctx, text, ru, det) {
			return ru, true
		}
	}
	r.log.Debug("no rule matched", zap.Int("rules", len(rules)))
	return rule.Rule{}, false
}

// MatchAll returns every matching rule in list order, skipping any rule
// whose action was already claimed by an earlier match. First match per
// action wins; input order is the tie-break.
func (r *Recognizer) MatchAll(ctx context.Context, text string, rules []rule.Rule) []rule.Rule {
	det := NewDetection()
	claimed := make(map[action.Action]struct{})
	var out []rule.Rule

	for _, ru := range rules {
		if _, done := claimed[ru.Action]; done {
			continue
		}
		if r.Recognize(ctx, text, ru, det) {
			claimed[ru.Action] = struct{}{}
			out = append(out, ru)
		}
	}
	return out
}
