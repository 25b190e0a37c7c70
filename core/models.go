package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for a normalized text form.
// It is generated using content-based hashing so that identical
// normalized forms share an identity.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Mode selects the similarity algorithm used when scoring two strings.
type Mode int

const (
	// ModeRatio scores whole-string similarity from insertion/deletion
	// edit distance.
	ModeRatio Mode = iota + 1
	// ModePartialRatio scores the best-aligned substring of the longer
	// string against the shorter one.
	ModePartialRatio
)

// String returns the mode name as used in logs and CLI flags.
func (m Mode) String() string {
	switch m {
	case ModeRatio:
		return "ratio"
	case ModePartialRatio:
		return "partial_ratio"
	default:
		return "unknown"
	}
}

// Valid reports whether the mode is one of the defined algorithms.
func (m Mode) Valid() bool {
	return m == ModeRatio || m == ModePartialRatio
}

// MatchResult represents a single search hit: the original (un-normalized)
// candidate phrase and its similarity score in [0,100].
type MatchResult struct {
	Phrase string
	Score  int
}
