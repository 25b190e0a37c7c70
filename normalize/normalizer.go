package normalize

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalizer applies the text-cleanup pipeline: abbreviation expansion,
// case folding, equivalence substitution, and whitespace collapse.
// All configured patterns are compiled once at construction; Normalize
// itself never fails.
type Normalizer struct {
	abbreviations []abbreviationRule
	equivalences  []equivalenceRule
	logger        *slog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) error {
		if logger == nil {
			logger = slog.Default()
		}
		n.logger = logger
		return nil
	}
}

// NewNormalizer creates a normalizer from ordered abbreviation and
// equivalence rules. Rules are applied in the order given: each
// abbreviation's output feeds the next rule's input. Malformed patterns
// are rejected here, not at normalization time.
func NewNormalizer(abbreviations []Abbreviation, equivalences []Equivalence, opts ...Option) (*Normalizer, error) {
	n := &Normalizer{
		abbreviations: make([]abbreviationRule, 0, len(abbreviations)),
		equivalences:  make([]equivalenceRule, 0, len(equivalences)),
		logger:        slog.Default(),
	}

	for _, a := range abbreviations {
		rule, err := compileAbbreviation(a)
		if err != nil {
			return nil, err
		}
		n.abbreviations = append(n.abbreviations, rule)
	}
	for _, e := range equivalences {
		rule, err := compileEquivalence(e)
		if err != nil {
			return nil, err
		}
		n.equivalences = append(n.equivalences, rule)
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// Normalize returns the canonical form of text. The pipeline is
// deterministic and idempotent under the default rules: expand
// abbreviations, lowercase, apply equivalence substitutions, collapse
// whitespace. Digits are never removed. A rule that cannot be applied is
// skipped with a diagnostic; the text as of that point flows on.
func (n *Normalizer) Normalize(text string) string {
	text = n.expandAbbreviations(text)
	text = strings.ToLower(text)

	for _, rule := range n.equivalences {
		if rule.re == nil {
			n.logger.Warn("skipping uncompiled equivalence rule", "replacement", rule.replacement)
			continue
		}
		text = rule.re.ReplaceAllString(text, rule.replacement)
	}

	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// expandAbbreviations replaces standalone occurrences of each configured
// token with its expansion, in rule order.
func (n *Normalizer) expandAbbreviations(text string) string {
	for _, rule := range n.abbreviations {
		if rule.re == nil {
			n.logger.Warn("skipping uncompiled abbreviation rule", "expansion", rule.expansion)
			continue
		}
		text = replaceStandalone(text, rule.re, rule.expansion)
	}
	return text
}

// replaceStandalone rewrites every match of re that is not adjacent to a
// word character on either side. Boundary checks are done manually since
// RE2 has no lookaround.
func replaceStandalone(text string, re *regexp.Regexp, expansion string) string {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if wordCharBefore(text, start) || wordCharAfter(text, end) {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(expansion)
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

func wordCharBefore(text string, idx int) bool {
	if idx == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return isWordChar(r)
}

func wordCharAfter(text string, idx int) bool {
	if idx >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[idx:])
	return isWordChar(r)
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
