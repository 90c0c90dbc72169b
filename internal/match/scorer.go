// Package match computes rule-based compatibility scores between candidates
// and positions. Scoring is a pure function of the two records.
package match

import (
	"sort"

	"hrkeeper/internal/hr"
	"hrkeeper/internal/store"
)

// Fixed scoring policy. The final score blends the required-skill match
// with the experience-level alignment:
//
//	score = 0.7*skills + 0.3*level
//
// Each required skill contributes 0.6*min(prof/reqProf, 1) +
// 0.4*min(years/reqYears, 1), zero when the candidate lacks the skill.
// A level one rank away from the position's earns half credit.
const (
	skillsWeight = 0.7
	levelWeight  = 0.3

	proficiencyWeight = 0.6
	yearsWeight       = 0.4

	adjacentLevelCredit = 0.5
)

// Score returns a deterministic compatibility score in [0, 1].
func Score(c *hr.Candidate, p *hr.JobPosition) float64 {
	return skillsWeight*SkillScore(c, p) + levelWeight*LevelScore(c, p)
}

// SkillScore averages the per-requirement sub-scores with equal weighting.
// A position with no required skills scores 1.
func SkillScore(c *hr.Candidate, p *hr.JobPosition) float64 {
	if len(p.RequiredSkills) == 0 {
		return 1
	}

	var total float64
	for _, req := range p.RequiredSkills {
		have, ok := c.SkillByName(req.Name)
		if !ok {
			continue
		}
		total += proficiencyWeight*cappedRatio(float64(have.Proficiency), float64(req.Proficiency)) +
			yearsWeight*cappedRatio(have.YearsExperience, req.YearsExperience)
	}
	return total / float64(len(p.RequiredSkills))
}

// LevelScore compares the position's required level against the level
// implied by the candidate's total years of experience.
func LevelScore(c *hr.Candidate, p *hr.JobPosition) float64 {
	distance := p.Level.Rank() - LevelForYears(c.TotalYears).Rank()
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return 1
	case 1:
		return adjacentLevelCredit
	default:
		return 0
	}
}

// LevelForYears maps total years of experience onto an experience level.
// Candidates carry no explicit level, so the scorer derives one.
func LevelForYears(years float64) hr.ExperienceLevel {
	switch {
	case years < 2:
		return hr.LevelJunior
	case years < 5:
		return hr.LevelMid
	case years < 9:
		return hr.LevelSenior
	case years < 13:
		return hr.LevelLead
	default:
		return hr.LevelExecutive
	}
}

func cappedRatio(have, want float64) float64 {
	if want <= 0 {
		return 1
	}
	if have >= want {
		return 1
	}
	return have / want
}

// Match is one scored candidate in a TopMatches result.
type Match struct {
	CandidateID   string   `json:"candidate_id"`
	Name          string   `json:"name"`
	Email         string   `json:"email,omitempty"`
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills,omitempty"`
}

// TopMatches scores every candidate still in the APPLIED or SCREENING stage
// against the position and returns the best topN, highest score first with
// candidate id as the tie-break. Candidates sharing no required skill with
// the position are dropped.
func TopMatches(st *store.Store, positionID string, topN int) ([]Match, error) {
	p, err := st.GetPosition(positionID)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0)
	for _, c := range st.Candidates() {
		if c.Status != hr.CandidateApplied && c.Status != hr.CandidateScreening {
			continue
		}

		matched := matchedSkills(c, p)
		if len(matched) == 0 && len(p.RequiredSkills) > 0 {
			continue
		}

		matches = append(matches, Match{
			CandidateID:   c.ID,
			Name:          c.Name,
			Email:         c.Email,
			Score:         Score(c, p),
			MatchedSkills: matched,
		})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].Score != matches[b].Score {
			return matches[a].Score > matches[b].Score
		}
		return matches[a].CandidateID < matches[b].CandidateID
	})

	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return matches, nil
}

func matchedSkills(c *hr.Candidate, p *hr.JobPosition) []string {
	var matched []string
	for _, req := range p.RequiredSkills {
		if _, ok := c.SkillByName(req.Name); ok {
			matched = append(matched, req.Name)
		}
	}
	return matched
}
