// Package state holds the plain-data state behind the UI so it can be
// tested without a running Bubble Tea program.
package state

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/weftkit/weft/internal/focus"
)

// Jump tracks the jump-to-element prompt: the full candidate set collected
// from the tree and the subset matching the current query, best match
// first.
type Jump struct {
	Query      string
	Candidates []focus.Candidate
	Matches    []focus.Candidate
}

// NewJump constructs jump state over the given candidates. With an empty
// query every candidate matches, in document order.
func NewJump(candidates []focus.Candidate) *Jump {
	j := &Jump{Candidates: CloneCandidates(candidates)}
	j.SetQuery("")
	return j
}

// SetQuery updates the query and recomputes the match set.
func (j *Jump) SetQuery(query string) {
	j.Query = query
	j.Matches = matchCandidates(j.Candidates, query)
}

// Best returns the top-ranked match for the current query.
func (j *Jump) Best() (focus.Candidate, bool) {
	if len(j.Matches) == 0 {
		return focus.Candidate{}, false
	}
	return j.Matches[0], true
}

// CloneCandidates produces a shallow copy of the provided candidates.
func CloneCandidates(candidates []focus.Candidate) []focus.Candidate {
	dup := make([]focus.Candidate, len(candidates))
	copy(dup, candidates)
	return dup
}

// matchCandidates ranks candidates against the query with fuzzy matching,
// closest match first. When no label matches, it falls back to matching the
// element kind name so "button" or "input" jumps by kind.
func matchCandidates(candidates []focus.Candidate, query string) []focus.Candidate {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneCandidates(candidates)
	}
	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		sort.Stable(ranks)
		matched := make([]focus.Candidate, 0, len(ranks))
		for _, rank := range ranks {
			matched = append(matched, candidates[rank.OriginalIndex])
		}
		return matched
	}
	lower := strings.ToLower(trimmed)
	matched := make([]focus.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Elem != nil && strings.Contains(c.Elem.Kind().String(), lower) {
			matched = append(matched, c)
		}
	}
	return matched
}
