package normalize

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultAbbreviations() []Abbreviation {
	return []Abbreviation{
		{Token: "Dr.", Expansion: "Doctor"},
		{Token: "e.g.", Expansion: "for example"},
		{Token: "etc.", Expansion: "et cetera"},
	}
}

func defaultEquivalences() []Equivalence {
	return []Equivalence{
		{Pattern: `developer \d+`, Replacement: "developer"},
	}
}

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n, err := NewNormalizer(defaultAbbreviations(), defaultEquivalences())
	require.NoError(t, err)
	return n
}

func TestNewNormalizer(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		n, err := NewNormalizer(defaultAbbreviations(), defaultEquivalences())
		require.NoError(t, err)
		assert.NotNil(t, n)
	})

	t.Run("no rules", func(t *testing.T) {
		n, err := NewNormalizer(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "plain text", n.Normalize("Plain  Text"))
	})

	t.Run("with custom logger", func(t *testing.T) {
		n, err := NewNormalizer(nil, nil, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, n)
	})

	t.Run("empty abbreviation token", func(t *testing.T) {
		_, err := NewNormalizer([]Abbreviation{{Token: "", Expansion: "x"}}, nil)
		assert.ErrorIs(t, err, ErrEmptyAbbreviationToken)
	})

	t.Run("empty equivalence pattern", func(t *testing.T) {
		_, err := NewNormalizer(nil, []Equivalence{{Pattern: "", Replacement: "x"}})
		assert.ErrorIs(t, err, ErrEmptyEquivalencePattern)
	})

	t.Run("malformed equivalence pattern", func(t *testing.T) {
		_, err := NewNormalizer(nil, []Equivalence{{Pattern: "(unclosed", Replacement: "x"}})
		assert.Error(t, err)
	})
}

func TestNormalize_AbbreviationExpansion(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"title before name", "Dr. Smith", "doctor smith"},
		{"case insensitive", "dr. smith", "doctor smith"},
		{"mid sentence", "ask e.g. apples, oranges", "ask for example apples, oranges"},
		{"token alone", "etc.", "et cetera"},
		{"nothing to expand", "Nothing to expand", "nothing to expand"},
		{"token inside word is kept", "Dr.Smith", "dr.smith"},
		{"repeated tokens", "Dr. Adams and Dr. Brown", "doctor adams and doctor brown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestNormalize_Pipeline(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing spaces", "Dr. Smith  ", "doctor smith"},
		{"mixed case and spacing", "Mixed  Case", "mixed case"},
		{"equivalence folding", "Developer 7 arrived", "developer arrived"},
		{"digits preserved", "Test 123", "test 123"},
		{"room numbers preserved", "Room 101", "room 101"},
		{"tabs and newlines", "a\tb\nc", "a b c"},
		{"empty input", "", ""},
		{"whitespace only", "   \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := newTestNormalizer(t)

	inputs := []string{
		"Dr. Smith is a cardiologist",
		"e.g. bananas, apples, etc.",
		"Developer 42 fixed the build",
		"Room 101",
		"The quick brown fox",
		"  spaced    out  ",
		"",
	}

	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "normalize should be a no-op on %q", once)
	}
}

func TestNormalize_RuleOrder(t *testing.T) {
	// Later abbreviation rules see the output of earlier ones.
	n, err := NewNormalizer([]Abbreviation{
		{Token: "St.", Expansion: "Saint"},
		{Token: "Saint", Expansion: "Holy"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "holy mary", n.Normalize("St. Mary"))
}

func TestReplaceStandalone_Boundaries(t *testing.T) {
	n, err := NewNormalizer([]Abbreviation{{Token: "etc", Expansion: "et cetera"}}, nil)
	require.NoError(t, err)

	// "etc" must not fire inside "fetch" or "etcetera".
	assert.Equal(t, "fetch the data", n.Normalize("fetch the data"))
	assert.Equal(t, "etcetera", n.Normalize("etcetera"))
	assert.Equal(t, "et cetera, and so on", n.Normalize("etc, and so on"))
}
