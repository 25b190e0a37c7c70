package score

import (
	"testing"

	"github.com/poiesic/fuzzymatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "example 1", "example 1", 100},
		{"both empty", "", "", 100},
		{"one empty", "abc", "", 0},
		{"disjoint", "abc", "xyz", 0},
		// indel distance 2 over total length 18
		{"numbered variants", "example 1", "example 2", 89},
		// indel distance 2 over total length 16
		{"room numbers", "room 101", "room 102", 88},
		// "lecture 200" is a subsequence of "lecture hall 200"
		{"subsequence", "lecture 200", "lecture hall 200", 81},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ratio(tt.a, tt.b))
		})
	}
}

func TestRatio_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"example 1", "example 2"},
		{"lecture 200", "lecture hall 200"},
		{"", "abc"},
		{"doctor smith", "doctor smyth"},
		{"日本語", "日本"},
	}

	for _, p := range pairs {
		assert.Equal(t, Ratio(p[0], p[1]), Ratio(p[1], p[0]), "Ratio(%q, %q)", p[0], p[1])
	}
}

func TestRatio_Range(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"a", ""},
		{"abcdef", "ghijkl"},
		{"the quick brown fox", "the quick brown fox jumps"},
	}

	for _, p := range pairs {
		s := Ratio(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestPartialRatio(t *testing.T) {
	t.Run("exact substring scores 100", func(t *testing.T) {
		assert.Equal(t, 100, PartialRatio("example", "this is an example"))
	})

	t.Run("fuzzy containment", func(t *testing.T) {
		// Best alignment is the trailing boundary window " example".
		assert.Equal(t, 82, PartialRatio("example 1", "this is an example"))
	})

	t.Run("never below whole-string ratio", func(t *testing.T) {
		assert.Equal(t, 81, PartialRatio("lecture 200", "lecture hall 200"))
	})

	t.Run("equal lengths degrade to ratio", func(t *testing.T) {
		assert.Equal(t, Ratio("abcd", "abce"), PartialRatio("abcd", "abce"))
	})

	t.Run("empty probe", func(t *testing.T) {
		assert.Equal(t, 0, PartialRatio("", "abc"))
		assert.Equal(t, 100, PartialRatio("", ""))
	})
}

func TestPartialRatio_Monotonic(t *testing.T) {
	pairs := [][2]string{
		{"example 1", "example 2"},
		{"example 1", "this is an example"},
		{"lecture 200", "lecture hall 200"},
		{"python", "python programming is fun"},
		{"abcdef", "xyz"},
		{"", ""},
		{"room 101", "room 102"},
	}

	for _, p := range pairs {
		assert.GreaterOrEqual(t, PartialRatio(p[0], p[1]), Ratio(p[0], p[1]),
			"PartialRatio(%q, %q) must not be below Ratio", p[0], p[1])
	}
}

func TestScore(t *testing.T) {
	t.Run("ratio mode", func(t *testing.T) {
		s, err := Score("example 1", "example 2", core.ModeRatio)
		require.NoError(t, err)
		assert.Equal(t, 89, s)
	})

	t.Run("partial ratio mode", func(t *testing.T) {
		s, err := Score("example", "this is an example", core.ModePartialRatio)
		require.NoError(t, err)
		assert.Equal(t, 100, s)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := Score("a", "b", core.Mode(99))
		assert.ErrorIs(t, err, core.ErrUnknownMode)
	})
}
