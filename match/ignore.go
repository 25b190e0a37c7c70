package match

import (
	"fmt"
	"regexp"
)

// IgnoreCombination is an unordered pair of regular expression patterns.
// A match between two normalized texts is suppressed when one text fully
// matches First and the other fully matches Second, in either order.
type IgnoreCombination struct {
	First  string `toml:"first"`
	Second string `toml:"second"`
}

// ignoreRule is a compiled IgnoreCombination. Patterns are anchored for
// full-match semantics.
type ignoreRule struct {
	first  *regexp.Regexp
	second *regexp.Regexp
}

func compileIgnoreCombination(c IgnoreCombination) (ignoreRule, error) {
	if c.First == "" || c.Second == "" {
		return ignoreRule{}, ErrIgnorePatternRequired
	}
	first, err := compileFullMatch(c.First)
	if err != nil {
		return ignoreRule{}, err
	}
	second, err := compileFullMatch(c.Second)
	if err != nil {
		return ignoreRule{}, err
	}
	return ignoreRule{first: first, second: second}, nil
}

func compileFullMatch(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("compiling ignore pattern %q: %w", pattern, err)
	}
	return re, nil
}

// ShouldIgnore reports whether a match between the two raw texts should be
// suppressed. Both inputs are normalized internally, then tested against
// every configured combination symmetrically. The check never fails: a
// rule that cannot be evaluated is skipped, so evaluation fails open to
// "do not ignore". ShouldIgnore(a, b) == ShouldIgnore(b, a).
func (m *Matcher) ShouldIgnore(rawA, rawB string) bool {
	a := m.normalizer.Normalize(rawA)
	b := m.normalizer.Normalize(rawB)

	for _, rule := range m.ignoreRules {
		if rule.first == nil || rule.second == nil {
			m.logger.Warn("skipping uncompiled ignore combination")
			continue
		}
		if (rule.first.MatchString(a) && rule.second.MatchString(b)) ||
			(rule.first.MatchString(b) && rule.second.MatchString(a)) {
			return true
		}
	}
	return false
}
