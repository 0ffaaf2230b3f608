package engine

import (
	"regexp"
	"strings"
)

// brandRule maps any of its substrings to a fixed canonical key.
// Rules are evaluated in order; the first match wins.
type brandRule struct {
	key     string
	matches []string
}

var brandRules = []brandRule{
	{key: "netflix", matches: []string{"netflix"}},
	{key: "prime", matches: []string{"prime", "amazon"}},
	{key: "apple", matches: []string{"apple"}},
	{key: "hulu", matches: []string{"hulu"}},
	{key: "disney", matches: []string{"disney"}},
	{key: "max", matches: []string{"max", "hbo"}},
	{key: "paramount", matches: []string{"paramount"}},
	{key: "peacock", matches: []string{"peacock"}},
	{key: "showtime", matches: []string{"showtime"}},
	{key: "starz", matches: []string{"starz"}},
}

var (
	parenSuffix  = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	adsSuffix    = regexp.MustCompile(`\s*\b(with\s+)?ads$`)
	premiumWord  = regexp.MustCompile(`\s*\bpremium$`)
	plusWord     = regexp.MustCompile(`\s*\bplus$`)
	plusSymbol   = regexp.MustCompile(`\s*\+$`)
	fallbackStep = []*regexp.Regexp{parenSuffix, adsSuffix, premiumWord, plusWord, plusSymbol}
)

// NormalizeProvider returns the canonical key for a streaming-service name.
func NormalizeProvider(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, rule := range brandRules {
		for _, m := range rule.matches {
			if strings.Contains(lower, m) {
				return rule.key
			}
		}
	}

	// Suffixes can be stacked ("Foo Premium (Channel) with Ads"), so strip
	// until nothing changes.
	key := lower
	for {
		prev := key
		for _, re := range fallbackStep {
			key = strings.TrimSpace(re.ReplaceAllString(key, ""))
		}
		if key == prev {
			return key
		}
	}
}

// DedupeProviders keeps one provider per canonical key. Ad-supported tiers
// are moved behind every other entry first so the ad-free record wins.
func DedupeProviders(providers []Provider) []Provider {
	if len(providers) == 0 {
		return []Provider{}
	}

	ordered := make([]Provider, 0, len(providers))
	var withAds []Provider
	for _, p := range providers {
		if strings.Contains(strings.ToLower(p.ProviderName), "ads") {
			withAds = append(withAds, p)
			continue
		}
		ordered = append(ordered, p)
	}
	ordered = append(ordered, withAds...)

	seen := make(map[string]struct{}, len(ordered))
	out := make([]Provider, 0, len(ordered))
	for _, p := range ordered {
		key := NormalizeProvider(p.ProviderName)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
