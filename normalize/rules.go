package normalize

import (
	"fmt"
	"regexp"
)

// Abbreviation maps a literal token to its expanded form.
// Tokens are matched case-insensitively as standalone tokens: an
// occurrence is only expanded when neither neighbouring character is a
// word character.
type Abbreviation struct {
	Token     string `toml:"token"`
	Expansion string `toml:"expansion"`
}

// Equivalence folds variant phrasings into one equivalence class during
// normalization. Pattern is a regular expression applied unanchored and
// globally; Replacement may reference capture groups.
type Equivalence struct {
	Pattern     string `toml:"pattern"`
	Replacement string `toml:"replacement"`
}

// abbreviationRule is a compiled Abbreviation.
type abbreviationRule struct {
	re        *regexp.Regexp
	expansion string
}

// equivalenceRule is a compiled Equivalence.
type equivalenceRule struct {
	re          *regexp.Regexp
	replacement string
}

func compileAbbreviation(a Abbreviation) (abbreviationRule, error) {
	if a.Token == "" {
		return abbreviationRule{}, ErrEmptyAbbreviationToken
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(a.Token))
	if err != nil {
		return abbreviationRule{}, fmt.Errorf("compiling abbreviation %q: %w", a.Token, err)
	}
	return abbreviationRule{re: re, expansion: a.Expansion}, nil
}

func compileEquivalence(e Equivalence) (equivalenceRule, error) {
	if e.Pattern == "" {
		return equivalenceRule{}, ErrEmptyEquivalencePattern
	}
	re, err := regexp.Compile(e.Pattern)
	if err != nil {
		return equivalenceRule{}, fmt.Errorf("compiling equivalence pattern %q: %w", e.Pattern, err)
	}
	return equivalenceRule{re: re, replacement: e.Replacement}, nil
}
