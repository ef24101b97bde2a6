package execute

import (
	"strings"
	"time"
)

// Render expands the placeholders a prompt template may carry:
// {{clipboard}}, {{selection}} and {{datetime}}. Datetime renders as
// RFC 3339 local time.
func Render(template string, env Env) string {
	at := env.Datetime
	if at.IsZero() {
		at = time.Now()
	}
	r := strings.NewReplacer(
		"{{clipboard}}", env.Clipboard,
		"{{selection}}", env.Selection,
		"{{datetime}}", at.Format(time.RFC3339),
	)
	return r.Replace(template)
}
