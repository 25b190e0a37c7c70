package match

import "github.com/poiesic/fuzzymatch/core"

// Monitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during
// a search. Fault may be invoked from scoring workers and must be safe
// for concurrent use; the remaining callbacks are sequential.
type Monitor interface {
	Start(query string)
	AfterNormalization(normalizedQuery string, distinctForms []string)
	AfterScoring(topForms []string)
	MatchExcluded(query, candidate string)
	Fault(stage string, err error)
	Finish(results []core.MatchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                       {}
func (n *noopMonitor) AfterNormalization(_ string, _ []string) {}
func (n *noopMonitor) AfterScoring(_ []string)              {}
func (n *noopMonitor) MatchExcluded(_, _ string)            {}
func (n *noopMonitor) Fault(_ string, _ error)              {}
func (n *noopMonitor) Finish(_ []core.MatchResult)          {}
