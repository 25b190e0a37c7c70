// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package fuzzymatch

import (
	"fmt"
	"os"
	"regexp"

	"github.com/pelletier/go-toml/v2"
	"github.com/poiesic/fuzzymatch/core"
	"github.com/poiesic/fuzzymatch/match"
	"github.com/poiesic/fuzzymatch/normalize"
)

// Config holds the process-wide matching rules. It is loaded once at
// startup and treated as read-only afterward; every pattern it carries is
// compiled when the engine is constructed.
type Config struct {
	// Abbreviations is the ordered literal-to-expansion table applied
	// first during normalization. Order matters: later entries see the
	// output of earlier expansions.
	Abbreviations []normalize.Abbreviation `toml:"abbreviations"`

	// Equivalences are (pattern, replacement) rules that fold variant
	// phrasings into one equivalence class, e.g. "developer 7" -> "developer".
	Equivalences []normalize.Equivalence `toml:"equivalences"`

	// IgnoreCombinations are symmetric full-match pattern pairs that
	// suppress matches between textually close but semantically distinct
	// phrases, e.g. "example 1" vs "example 2".
	IgnoreCombinations []match.IgnoreCombination `toml:"ignore_combinations"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAbbreviation appends an abbreviation expansion rule.
func WithAbbreviation(token, expansion string) ConfigOption {
	return func(c *Config) {
		c.Abbreviations = append(c.Abbreviations, normalize.Abbreviation{Token: token, Expansion: expansion})
	}
}

// WithEquivalence appends an equivalence substitution rule.
func WithEquivalence(pattern, replacement string) ConfigOption {
	return func(c *Config) {
		c.Equivalences = append(c.Equivalences, normalize.Equivalence{Pattern: pattern, Replacement: replacement})
	}
}

// WithIgnoreCombination appends a symmetric pattern pair whose matches
// are suppressed.
func WithIgnoreCombination(first, second string) ConfigOption {
	return func(c *Config) {
		c.IgnoreCombinations = append(c.IgnoreCombinations, match.IgnoreCombination{First: first, Second: second})
	}
}

// DefaultConfig returns the stock rule tables: common English
// abbreviations, the numbered-example ignore pairs, and the numbered
// developer equivalence class.
func DefaultConfig() *Config {
	return &Config{
		Abbreviations: []normalize.Abbreviation{
			{Token: "Dr.", Expansion: "Doctor"},
			{Token: "e.g.", Expansion: "for example"},
			{Token: "etc.", Expansion: "et cetera"},
		},
		Equivalences: []normalize.Equivalence{
			{Pattern: `developer \d+`, Replacement: "developer"},
		},
		IgnoreCombinations: []match.IgnoreCombination{
			{First: `example 1`, Second: `example 2`},
			{First: `test case \d+`, Second: `test case \d+`},
		},
	}
}

// NewConfig creates a Config with the default rule tables and applies the
// provided options. This is the recommended way to create a Config with
// custom rules.
//
// Example:
//
//	cfg := NewConfig(
//	    WithAbbreviation("St.", "Street"),
//	    WithIgnoreCombination(`room \d+`, `room \d+`),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// LoadConfig reads rule tables from a TOML file, starting from the
// defaults: a table present in the file replaces the default table of the
// same name, an absent one keeps the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}

	defaults := DefaultConfig()
	if len(cfg.Abbreviations) == 0 {
		cfg.Abbreviations = defaults.Abbreviations
	}
	if len(cfg.Equivalences) == 0 {
		cfg.Equivalences = defaults.Equivalences
	}
	if len(cfg.IgnoreCombinations) == 0 {
		cfg.IgnoreCombinations = defaults.IgnoreCombinations
	}
	return cfg, nil
}

// Validate checks that every configured rule is well formed and every
// pattern compiles. Malformed configuration is a startup concern; once a
// Config validates, the engine built from it cannot hit a pattern error
// at search time.
func (c *Config) Validate() error {
	for _, a := range c.Abbreviations {
		if a.Token == "" {
			return core.ErrEmptyAbbreviation
		}
	}
	for _, e := range c.Equivalences {
		if e.Pattern == "" {
			return core.ErrEmptyPattern
		}
		if _, err := regexp.Compile(e.Pattern); err != nil {
			return fmt.Errorf("equivalence pattern %q: %w", e.Pattern, err)
		}
	}
	for _, ic := range c.IgnoreCombinations {
		if ic.First == "" || ic.Second == "" {
			return core.ErrEmptyPattern
		}
		for _, p := range []string{ic.First, ic.Second} {
			if _, err := regexp.Compile(p); err != nil {
				return fmt.Errorf("ignore pattern %q: %w", p, err)
			}
		}
	}
	return nil
}
