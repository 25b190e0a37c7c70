package score

import (
	"math"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"github.com/poiesic/fuzzymatch/core"
)

// Score computes the similarity between a and b in [0,100] using the
// selected mode. The only possible error is an unknown mode; callers that
// must not fail treat that as a score of 0.
func Score(a, b string, mode core.Mode) (int, error) {
	switch mode {
	case core.ModeRatio:
		return Ratio(a, b), nil
	case core.ModePartialRatio:
		return PartialRatio(a, b), nil
	default:
		return 0, core.ErrUnknownMode
	}
}

// Ratio scores whole-string similarity from the Indel edit distance, the
// minimum-cost alignment using only insertions and deletions. With
// distance D the score is round(100 * (1 - D/(len(a)+len(b)))), defined
// as 100 when both strings are empty. Lengths are rune counts. Ratio is
// symmetric in its arguments.
func Ratio(a, b string) int {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la+lb == 0 {
		return 100
	}
	d := edlib.LCSEditDistance(a, b)
	return int(math.Round(100 * (1 - float64(d)/float64(la+lb))))
}

// PartialRatio scores fuzzy containment of the shorter string inside the
// longer one: the maximum Ratio between the shorter string and every
// same-length rune window of the longer, plus the two boundary partial
// windows (the prefix and suffix one rune shorter) when the lengths
// differ. The result is never below Ratio(a, b).
func PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}

	best := Ratio(a, b)
	if len(short) == 0 || len(short) == len(long) {
		return best
	}

	probe := string(short)
	for i := 0; i+len(short) <= len(long); i++ {
		if s := Ratio(probe, string(long[i:i+len(short)])); s > best {
			best = s
		}
	}

	if edge := len(short) - 1; edge > 0 {
		if s := Ratio(probe, string(long[:edge])); s > best {
			best = s
		}
		if s := Ratio(probe, string(long[len(long)-edge:])); s > best {
			best = s
		}
	}

	return best
}
