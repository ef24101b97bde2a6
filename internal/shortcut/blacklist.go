package shortcut

import (
	"regexp"
	"strings"
	"sync"
)

// Blacklist decides whether dispatch is suppressed for the frontmost
// application or website. Rules are case-insensitive wildcard patterns
// ("*" any run, "?" any one character): rules starting with http:// or
// https:// match the current page URL, all others match the
// application identifier. Trailing slashes are ignored on both sides
// of a URL comparison.
type Blacklist struct {
	mu    sync.RWMutex
	apps  []*regexp.Regexp
	sites []*regexp.Regexp
}

// NewBlacklist compiles the given rules. Malformed rules cannot occur;
// wildcard patterns always compile.
func NewBlacklist(rules []string) *Blacklist {
	b := &Blacklist{}
	b.Set(rules)
	return b
}

// Set replaces the rule set.
func (b *Blacklist) Set(rules []string) {
	var apps, sites []*regexp.Regexp
	for _, r := range rules {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(r), "http://") ||
			strings.HasPrefix(strings.ToLower(r), "https://") {
			sites = append(sites, wildcardRegexp(strings.TrimSuffix(r, "/")))
		} else {
			apps = append(apps, wildcardRegexp(r))
		}
	}
	b.mu.Lock()
	b.apps = apps
	b.sites = sites
	b.mu.Unlock()
}

// Blocked reports whether the given application id or page URL matches
// any rule. Either argument may be empty.
func (b *Blacklist) Blocked(appID, pageURL string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if appID != "" {
		for _, re := range b.apps {
			if re.MatchString(appID) {
				return true
			}
		}
	}
	if pageURL != "" {
		pageURL = strings.TrimSuffix(pageURL, "/")
		for _, re := range b.sites {
			if re.MatchString(pageURL) {
				return true
			}
		}
	}
	return false
}

// wildcardRegexp converts a wildcard pattern to an anchored,
// case-insensitive regexp.
func wildcardRegexp(pattern string) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString("(?i)^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return regexp.MustCompile(sb.String())
}
