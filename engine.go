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
	"log/slog"

	"github.com/poiesic/fuzzymatch/core"
	"github.com/poiesic/fuzzymatch/match"
	"github.com/poiesic/fuzzymatch/normalize"
)

// Engine is the top-level entry point: a normalizer and a matcher built
// from one immutable Config. It holds no per-search state and is safe for
// concurrent use.
type Engine struct {
	normalizer *normalize.Normalizer
	matcher    *match.Matcher
	logger     *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	logger   *slog.Logger
	poolSize int
}

// WithLogger sets the logger used by the engine and its components.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithPoolSize sets the worker pool size used for candidate scoring.
func WithPoolSize(size int) EngineOption {
	return func(o *engineOptions) {
		o.poolSize = size
	}
}

// NewEngine validates cfg, compiles every configured pattern, and builds
// the engine. A nil cfg uses DefaultConfig().
func NewEngine(cfg *Config, opts ...EngineOption) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Apply options
	options := &engineOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	normalizer, err := normalize.NewNormalizer(cfg.Abbreviations, cfg.Equivalences,
		normalize.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	matchOpts := []match.Option{match.WithLogger(options.logger)}
	if options.poolSize > 0 {
		matchOpts = append(matchOpts, match.WithPoolSize(options.poolSize))
	}
	matcher, err := match.NewMatcher(normalizer, cfg.IgnoreCombinations, matchOpts...)
	if err != nil {
		return nil, err
	}

	return &Engine{
		normalizer: normalizer,
		matcher:    matcher,
		logger:     options.logger,
	}, nil
}

// Close releases the engine's scoring resources.
// The engine should not be used after calling Close.
func (e *Engine) Close() {
	e.matcher.Release()
}

// Search ranks candidates against the query. See match.Matcher.Search.
func (e *Engine) Search(query string, candidates []string, threshold int, mode core.Mode) []core.MatchResult {
	return e.matcher.Search(query, candidates, threshold, mode)
}

// SearchWithMonitor is Search with per-stage monitoring callbacks.
func (e *Engine) SearchWithMonitor(query string, candidates []string, threshold int, mode core.Mode, monitor match.Monitor) []core.MatchResult {
	return e.matcher.SearchWithMonitor(query, candidates, threshold, mode, monitor)
}

// Normalize returns the canonical form of text under the engine's rules.
func (e *Engine) Normalize(text string) string {
	return e.normalizer.Normalize(text)
}

// ShouldIgnore reports whether a match between the two phrases is
// suppressed by an ignore combination.
func (e *Engine) ShouldIgnore(a, b string) bool {
	return e.matcher.ShouldIgnore(a, b)
}

// Matcher returns the underlying matcher.
func (e *Engine) Matcher() *match.Matcher {
	return e.matcher
}

// Normalizer returns the underlying normalizer.
func (e *Engine) Normalizer() *normalize.Normalizer {
	return e.normalizer
}
