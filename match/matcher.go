package match

import (
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/fuzzymatch/core"
	"github.com/poiesic/fuzzymatch/normalize"
	"github.com/poiesic/fuzzymatch/score"
)

// DefaultThreshold is the minimum score a candidate needs to be included
// in results when the caller has no stronger requirement.
const DefaultThreshold = 80

// matchLimit caps how many distinct normalized forms are considered per
// search, keeping the shape of the result set stable as the candidate
// list grows.
const matchLimit = 5

// Matcher ranks candidate phrases against a query by fuzzy similarity.
// It is stateless across calls and safe for concurrent use: every search
// is a pure function of its arguments plus the read-only configuration
// compiled at construction.
type Matcher struct {
	normalizer  *normalize.Normalizer
	ignoreRules []ignoreRule
	pool        *ants.Pool
	logger      *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent candidate scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(m *Matcher) error {
		if size < 1 {
			size = 1
		}
		if m.pool != nil {
			m.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		m.pool = pool
		return nil
	}
}

// NewMatcher creates a matcher over the given normalizer and ignore
// combinations. All patterns are compiled here; malformed configuration
// is a construction error, never a search-time one.
func NewMatcher(normalizer *normalize.Normalizer, combinations []IgnoreCombination, opts ...Option) (*Matcher, error) {
	if normalizer == nil {
		return nil, ErrNormalizerRequired
	}

	m := &Matcher{
		normalizer:  normalizer,
		ignoreRules: make([]ignoreRule, 0, len(combinations)),
		logger:      slog.Default(),
	}

	for _, c := range combinations {
		rule, err := compileIgnoreCombination(c)
		if err != nil {
			return nil, err
		}
		m.ignoreRules = append(m.ignoreRules, rule)
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	m.pool = pool

	// Apply options
	for _, opt := range opts {
		if err := opt(m); err != nil {
			m.Release()
			return nil, err
		}
	}

	return m, nil
}

// Release releases the scoring worker pool.
// The matcher should not be used after calling Release.
func (m *Matcher) Release() {
	if m.pool != nil {
		m.pool.Release()
	}
}

// candidateForm is one distinct normalized candidate value and its score
// against the normalized query.
type candidateForm struct {
	text  string
	score int
}

// Search ranks candidates against the query using the selected mode.
// Returns (original phrase, score) pairs with score >= threshold, sorted
// by score descending with ties broken by position in the candidate list.
// Matches suppressed by an ignore combination are excluded. Search never
// fails; internal faults degrade to lower scores or an empty result.
func (m *Matcher) Search(query string, candidates []string, threshold int, mode core.Mode) []core.MatchResult {
	return m.SearchWithMonitor(query, candidates, threshold, mode, nil)
}

// SearchWithMonitor is Search with monitoring. The monitor receives
// callbacks at each stage of the search process.
func (m *Matcher) SearchWithMonitor(query string, candidates []string, threshold int, mode core.Mode, monitor Monitor) []core.MatchResult {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	results := []core.MatchResult{}
	if query == "" || len(candidates) == 0 {
		monitor.Finish(results)
		return results
	}

	queryNorm := m.normalizer.Normalize(query)
	m.logger.Info("searching", "query", queryNorm, "mode", mode.String(), "candidates", len(candidates))

	// Collect distinct normalized forms in first-encountered order.
	// Multiple originals may share one form; identity is the content hash.
	forms := make([]candidateForm, 0, len(candidates))
	formIndex := make(map[core.ID]int, len(candidates))
	candidateForms := make([]int, len(candidates))
	for i, candidate := range candidates {
		normalized := m.normalizer.Normalize(candidate)
		id := core.IDFromContent(normalized)
		idx, ok := formIndex[id]
		if !ok {
			idx = len(forms)
			formIndex[id] = idx
			forms = append(forms, candidateForm{text: normalized})
		}
		candidateForms[i] = idx
	}

	formTexts := make([]string, len(forms))
	for i := range forms {
		formTexts[i] = forms[i].text
	}
	monitor.AfterNormalization(queryNorm, formTexts)

	// Score every distinct form against the normalized query.
	m.scoreForms(queryNorm, forms, mode, monitor)

	// Keep the top forms by score, ties in first-encountered order.
	ranked := make([]int, len(forms))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return forms[ranked[i]].score > forms[ranked[j]].score
	})
	if len(ranked) > matchLimit {
		ranked = ranked[:matchLimit]
	}
	kept := make(map[int]bool, len(ranked))
	for _, idx := range ranked {
		kept[idx] = true
	}
	monitor.AfterScoring(topForms(forms, ranked))

	// Map kept forms back to original candidates and filter.
	for i, candidate := range candidates {
		idx := candidateForms[i]
		if !kept[idx] {
			continue
		}
		s := forms[idx].score
		if s < threshold {
			continue
		}
		if m.ShouldIgnore(query, candidate) {
			m.logger.Info("ignoring match", "query", query, "candidate", candidate)
			monitor.MatchExcluded(query, candidate)
			continue
		}
		results = append(results, core.MatchResult{Phrase: candidate, Score: s})
	}

	// Sort by score descending; the stable sort preserves candidate-list
	// order between equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	m.logger.Info("search finished", "query", query, "hits", len(results), "mode", mode.String())
	monitor.Finish(results)

	return results
}

// scoreForms fills in the score of every form, using the worker pool when
// available. Form order carries no dependency, so scoring order does not
// affect the final ranking. A scoring fault degrades that pair to 0.
func (m *Matcher) scoreForms(query string, forms []candidateForm, mode core.Mode, monitor Monitor) {
	scoreOne := func(f *candidateForm) {
		s, err := score.Score(query, f.text, mode)
		if err != nil {
			m.logger.Error("error scoring candidate", "candidate", f.text, "err", err)
			monitor.Fault("score", err)
			s = 0
		}
		f.score = s
	}

	if m.pool == nil {
		for i := range forms {
			scoreOne(&forms[i])
		}
		return
	}

	var wg sync.WaitGroup
	for i := range forms {
		f := &forms[i]
		wg.Add(1)
		if err := m.pool.Submit(func() {
			defer wg.Done()
			scoreOne(f)
		}); err != nil {
			// Pool saturated or released: score inline instead.
			wg.Done()
			m.logger.Warn("scoring pool unavailable, scoring inline", "err", err)
			scoreOne(f)
		}
	}
	wg.Wait()
}

func topForms(forms []candidateForm, ranked []int) []string {
	texts := make([]string, len(ranked))
	for i, idx := range ranked {
		texts[i] = forms[idx].text
	}
	return texts
}
