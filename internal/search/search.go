package search

import (
	"fmt"
	"sort"

	"hrkeeper/internal/hr"
	"hrkeeper/internal/store"

	"go.uber.org/zap"
)

// Sort keys accepted by Query.SortBy. The empty key sorts by candidate id.
const (
	SortByName       = "name"
	SortByExperience = "experience"
)

// Query holds the candidate filters. All supplied filters are ANDed; nil or
// zero fields are not applied.
type Query struct {
	// Skills the candidate must all possess, matched case-insensitively
	// by name. Presence alone is enough; proficiency is not constrained.
	Skills []string
	// MinExperience is the minimum total years of experience.
	MinExperience *float64
	// Education is matched as a case-insensitive substring.
	Education string
	// Status is matched exactly.
	Status hr.CandidateStatus
	// MinSalary and MaxSalary select candidates whose desired range
	// overlaps the supplied bounds.
	MinSalary *float64
	MaxSalary *float64
	SortBy    string
}

func (q Query) validate() error {
	switch q.SortBy {
	case "", SortByName, SortByExperience:
	default:
		return fmt.Errorf("%w: unknown sort key %q", hr.ErrInvalidQuery, q.SortBy)
	}
	if q.Status != "" && !q.Status.IsValid() {
		return fmt.Errorf("%w: unknown candidate status %q", hr.ErrInvalidQuery, q.Status)
	}
	if q.MinExperience != nil && *q.MinExperience < 0 {
		return fmt.Errorf("%w: minimum experience must be non-negative", hr.ErrInvalidQuery)
	}
	return nil
}

func (q Query) filters() []Filter {
	return []Filter{
		&skillsFilter{skills: q.Skills},
		&minExperienceFilter{min: q.MinExperience},
		&educationFilter{education: q.Education},
		&statusFilter{status: q.Status},
		&salaryFilter{min: q.MinSalary, max: q.MaxSalary},
	}
}

// Engine runs candidate queries against a store without mutating it.
type Engine struct {
	store  *store.Store
	logger *zap.Logger
}

func New(st *store.Store, logger *zap.Logger) *Engine {
	return &Engine{store: st, logger: logger}
}

// Search applies the query filters sequentially and returns the matching
// candidates in a fresh slice. An empty result is not an error.
func (e *Engine) Search(q Query) ([]*hr.Candidate, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	items := e.store.Candidates()
	for _, f := range q.filters() {
		var step Step
		items, step = f.Apply(items)

		e.logger.Debug("search filter step",
			zap.String("name", f.Name()),
			zap.Int("initial", step.Initial),
			zap.Int("dropped", step.Dropped),
			zap.Int("left", step.Left),
		)
	}

	sortCandidates(items, q.SortBy)
	return items, nil
}

// sortCandidates orders by the requested key with candidate id as the
// deterministic tie-break. The input already arrives sorted by id.
func sortCandidates(items []*hr.Candidate, sortBy string) {
	switch sortBy {
	case SortByName:
		sort.SliceStable(items, func(a, b int) bool {
			if items[a].Name != items[b].Name {
				return items[a].Name < items[b].Name
			}
			return items[a].ID < items[b].ID
		})
	case SortByExperience:
		// Most experienced first.
		sort.SliceStable(items, func(a, b int) bool {
			if items[a].TotalYears != items[b].TotalYears {
				return items[a].TotalYears > items[b].TotalYears
			}
			return items[a].ID < items[b].ID
		})
	}
}
