package internal

import (
	"fmt"
	"regexp"
)

// LinkConfig supplies the defaults used to complete partial issue
// references.
type LinkConfig struct {
	DefaultOrg  string
	DefaultRepo string
}

// LinkTarget pairs a raw task reference with its resolved URL, if any.
type LinkTarget struct {
	Raw string
	URL string // empty when the reference matched no pattern
}

// linkMatcher pairs a pattern with a URL builder. Matchers are evaluated in
// order and the first match wins, which keeps the precedence
// (angle-bracket > owner/repo#N > repo#N > #N) explicit.
type linkMatcher struct {
	pattern *regexp.Regexp
	build   func(groups []string, cfg LinkConfig) string
}

var linkMatchers = []linkMatcher{
	{
		// <some.url/path> resolves verbatim
		pattern: regexp.MustCompile(`^<([^<>]+)>$`),
		build: func(g []string, cfg LinkConfig) string {
			return "https://" + g[1]
		},
	},
	{
		pattern: regexp.MustCompile(`^([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+)#([0-9]+)$`),
		build: func(g []string, cfg LinkConfig) string {
			return fmt.Sprintf("https://github.com/%s/%s/issues/%s", g[1], g[2], g[3])
		},
	},
	{
		pattern: regexp.MustCompile(`^([A-Za-z0-9_.-]+)#([0-9]+)$`),
		build: func(g []string, cfg LinkConfig) string {
			if cfg.DefaultOrg == "" {
				return ""
			}
			return fmt.Sprintf("https://github.com/%s/%s/issues/%s", cfg.DefaultOrg, g[1], g[2])
		},
	},
	{
		pattern: regexp.MustCompile(`^#([0-9]+)$`),
		build: func(g []string, cfg LinkConfig) string {
			if cfg.DefaultOrg == "" || cfg.DefaultRepo == "" {
				return ""
			}
			return fmt.Sprintf("https://github.com/%s/%s/issues/%s", cfg.DefaultOrg, cfg.DefaultRepo, g[1])
		},
	},
}

// Resolve maps a task reference to an external URL. The second return is
// false when the reference matches no recognized pattern; that is not an
// error, the reference is simply rendered as plain text.
func Resolve(ref string, cfg LinkConfig) (string, bool) {
	for _, m := range linkMatchers {
		groups := m.pattern.FindStringSubmatch(ref)
		if groups == nil {
			continue
		}
		url := m.build(groups, cfg)
		if url == "" {
			// Pattern matched but the config lacks the defaults needed
			// to complete it. Fall through to plain text.
			return "", false
		}
		return url, true
	}
	return "", false
}

// ResolveTarget is Resolve packaged as a LinkTarget row value.
func ResolveTarget(ref string, cfg LinkConfig) LinkTarget {
	url, ok := Resolve(ref, cfg)
	if !ok {
		return LinkTarget{Raw: ref}
	}
	return LinkTarget{Raw: ref, URL: url}
}

// IsLinkRef reports whether s matches any recognized reference pattern,
// regardless of configured defaults. Used to pick a task reference out of a
// free-form start message.
func IsLinkRef(s string) bool {
	for _, m := range linkMatchers {
		if m.pattern.MatchString(s) {
			return true
		}
	}
	return false
}
