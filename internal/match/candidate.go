package match

import (
	"cmp"
	"slices"
)

// Confidence thresholds for suggesting a name.
const (
	// DefaultMinScore is the minimum score for a suggestion.
	DefaultMinScore = 0.6
	// DefaultMinGap is the minimum score gap between the top two candidates.
	DefaultMinGap = 0.1
)

// Candidate is a known name scored against a target.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates, best first after Rank.
type CandidateList []Candidate

// Rank scores every known name against target. The result is sorted by score
// descending, then by name for determinism. Exact matches are included.
func Rank(target string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, name := range known {
		candidates = append(candidates, Candidate{Name: name, Score: NameScore(target, name)})
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return candidates
}

// Best returns the best candidate, or nil if there are none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// HighConfidence returns the best candidate if it is clearly better than the
// runner-up. Returns nil if no clear winner exists.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || best.Score < minScore {
		return nil
	}

	if len(c) > 1 && c[0].Score-c[1].Score < minGap {
		return nil
	}

	return best
}

// Suggest returns the known name target was most likely meant to be, using
// the default thresholds.
func Suggest(target string, known []string) (string, bool) {
	best := Rank(target, known).HighConfidence(DefaultMinScore, DefaultMinGap)
	if best == nil {
		return "", false
	}

	return best.Name, true
}
