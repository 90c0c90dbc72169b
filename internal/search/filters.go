package search

import (
	"strings"

	"hrkeeper/internal/hr"
)

// Filter is a single filtering step applied to a candidate list. Filters
// with no configured criteria pass the list through unchanged.
type Filter interface {
	Name() string
	Apply(items []*hr.Candidate) ([]*hr.Candidate, Step)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

func apply(items []*hr.Candidate, keep func(*hr.Candidate) bool) ([]*hr.Candidate, Step) {
	initial := len(items)
	kept := make([]*hr.Candidate, 0, initial)
	for _, c := range items {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}

type skillsFilter struct {
	skills []string
}

func (f *skillsFilter) Name() string { return "skills" }

func (f *skillsFilter) Apply(items []*hr.Candidate) ([]*hr.Candidate, Step) {
	if len(f.skills) == 0 {
		return items, Step{Initial: len(items), Left: len(items)}
	}
	return apply(items, func(c *hr.Candidate) bool {
		for _, name := range f.skills {
			if _, ok := c.SkillByName(name); !ok {
				return false
			}
		}
		return true
	})
}

type minExperienceFilter struct {
	min *float64
}

func (f *minExperienceFilter) Name() string { return "min_experience" }

func (f *minExperienceFilter) Apply(items []*hr.Candidate) ([]*hr.Candidate, Step) {
	if f.min == nil {
		return items, Step{Initial: len(items), Left: len(items)}
	}
	return apply(items, func(c *hr.Candidate) bool {
		return c.TotalYears >= *f.min
	})
}

type educationFilter struct {
	education string
}

func (f *educationFilter) Name() string { return "education" }

func (f *educationFilter) Apply(items []*hr.Candidate) ([]*hr.Candidate, Step) {
	if f.education == "" {
		return items, Step{Initial: len(items), Left: len(items)}
	}
	needle := strings.ToLower(f.education)
	return apply(items, func(c *hr.Candidate) bool {
		return strings.Contains(strings.ToLower(c.Education), needle)
	})
}

type statusFilter struct {
	status hr.CandidateStatus
}

func (f *statusFilter) Name() string { return "status" }

func (f *statusFilter) Apply(items []*hr.Candidate) ([]*hr.Candidate, Step) {
	if f.status == "" {
		return items, Step{Initial: len(items), Left: len(items)}
	}
	return apply(items, func(c *hr.Candidate) bool {
		return c.Status == f.status
	})
}

type salaryFilter struct {
	min *float64
	max *float64
}

func (f *salaryFilter) Name() string { return "salary" }

// The candidate's desired range must overlap the supplied bounds: desired
// min at or below the max bound, desired max at or above the min bound.
func (f *salaryFilter) Apply(items []*hr.Candidate) ([]*hr.Candidate, Step) {
	if f.min == nil && f.max == nil {
		return items, Step{Initial: len(items), Left: len(items)}
	}
	return apply(items, func(c *hr.Candidate) bool {
		if f.max != nil && c.Salary.Min > *f.max {
			return false
		}
		if f.min != nil && c.Salary.Max < *f.min {
			return false
		}
		return true
	})
}
