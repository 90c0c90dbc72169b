package match

import (
	"testing"

	"hrkeeper/internal/hr"
	"hrkeeper/internal/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func senior(id string, years float64, skills ...hr.Skill) *hr.Candidate {
	return &hr.Candidate{
		ID:         id,
		Name:       "Candidate " + id,
		TotalYears: years,
		Status:     hr.CandidateApplied,
		Skills:     skills,
	}
}

func seniorPosition(skills ...hr.Skill) *hr.JobPosition {
	return &hr.JobPosition{
		ID:             "POS-00000001",
		Title:          "Senior Software Engineer",
		Level:          hr.LevelSenior,
		Status:         hr.JobOpen,
		RequiredSkills: skills,
	}
}

func TestSkillScoreAllRequirementsCapped(t *testing.T) {
	t.Parallel()

	candidate := senior("CAN-00000001", 6,
		hr.Skill{Name: "Python", YearsExperience: 5, Proficiency: 5},
		hr.Skill{Name: "Django", YearsExperience: 3, Proficiency: 4},
	)
	position := seniorPosition(
		hr.Skill{Name: "Python", YearsExperience: 3, Proficiency: 3},
		hr.Skill{Name: "Django", YearsExperience: 2, Proficiency: 3},
	)

	// Both sub-scores cap at 1.0, so the skill component is exactly 1.0,
	// and with the level aligned the blended score is 1.0 as well.
	require.InDelta(t, 1.0, SkillScore(candidate, position), 1e-9)
	require.InDelta(t, 1.0, Score(candidate, position), 1e-9)
}

func TestScoreMissingSkillContributesZero(t *testing.T) {
	t.Parallel()

	candidate := senior("CAN-00000001", 6,
		hr.Skill{Name: "Python", YearsExperience: 5, Proficiency: 5},
	)
	position := seniorPosition(
		hr.Skill{Name: "Python", YearsExperience: 3, Proficiency: 3},
		hr.Skill{Name: "Kubernetes", YearsExperience: 2, Proficiency: 3},
	)

	// One of two requirements met: skill component is 0.5.
	require.InDelta(t, 0.5, SkillScore(candidate, position), 1e-9)
}

func TestScorePartialRatios(t *testing.T) {
	t.Parallel()

	candidate := senior("CAN-00000001", 6,
		hr.Skill{Name: "Go", YearsExperience: 2, Proficiency: 2},
	)
	position := seniorPosition(
		hr.Skill{Name: "Go", YearsExperience: 4, Proficiency: 4},
	)

	// 0.6*(2/4) + 0.4*(2/4) = 0.5
	require.InDelta(t, 0.5, SkillScore(candidate, position), 1e-9)
}

func TestScoreLevelAdjacency(t *testing.T) {
	t.Parallel()

	skill := hr.Skill{Name: "Go", YearsExperience: 5, Proficiency: 5}
	required := hr.Skill{Name: "Go", YearsExperience: 3, Proficiency: 3}
	position := seniorPosition(required)

	tests := []struct {
		name  string
		years float64
		want  float64
	}{
		// Skill component is 1.0 throughout; only the level blend varies.
		{name: "exact level", years: 6, want: 1.0},
		{name: "adjacent level", years: 3, want: 0.85},
		{name: "distant level", years: 1, want: 0.7},
		{name: "adjacent from above", years: 10, want: 0.85},
		{name: "far above", years: 20, want: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := senior("CAN-00000001", tt.years, skill)
			require.InDelta(t, tt.want, Score(candidate, position), 1e-9)
		})
	}
}

func TestScoreDeterministicAndBounded(t *testing.T) {
	t.Parallel()

	candidate := senior("CAN-00000001", 4.5,
		hr.Skill{Name: "Python", YearsExperience: 2.5, Proficiency: 3},
		hr.Skill{Name: "AWS", YearsExperience: 1, Proficiency: 2},
	)
	position := seniorPosition(
		hr.Skill{Name: "Python", YearsExperience: 5, Proficiency: 4},
		hr.Skill{Name: "AWS", YearsExperience: 2, Proficiency: 3},
		hr.Skill{Name: "Terraform", YearsExperience: 2, Proficiency: 3},
	)

	first := Score(candidate, position)
	second := Score(candidate, position)

	require.Equal(t, first, second)
	require.GreaterOrEqual(t, first, 0.0)
	require.LessOrEqual(t, first, 1.0)
}

func TestLevelForYears(t *testing.T) {
	t.Parallel()

	require.Equal(t, hr.LevelJunior, LevelForYears(0))
	require.Equal(t, hr.LevelMid, LevelForYears(2))
	require.Equal(t, hr.LevelSenior, LevelForYears(5))
	require.Equal(t, hr.LevelLead, LevelForYears(9))
	require.Equal(t, hr.LevelExecutive, LevelForYears(13))
}

func TestTopMatches(t *testing.T) {
	t.Parallel()

	st, err := store.Open(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	goSkill := hr.Skill{Name: "Go", YearsExperience: 3, Proficiency: 3}
	require.NoError(t, st.PutPosition(seniorPosition(goSkill)))

	strong := senior("CAN-00000002", 6, hr.Skill{Name: "Go", YearsExperience: 6, Proficiency: 5})
	weak := senior("CAN-00000001", 6, hr.Skill{Name: "Go", YearsExperience: 1, Proficiency: 2})
	noOverlap := senior("CAN-00000003", 6, hr.Skill{Name: "Rust", YearsExperience: 6, Proficiency: 5})
	hired := senior("CAN-00000004", 6, hr.Skill{Name: "Go", YearsExperience: 6, Proficiency: 5})
	hired.Status = hr.CandidateHired

	for _, c := range []*hr.Candidate{strong, weak, noOverlap, hired} {
		require.NoError(t, st.PutCandidate(c))
	}

	matches, err := TopMatches(st, "POS-00000001", 5)
	require.NoError(t, err)

	// The hired candidate and the one with no skill overlap are excluded;
	// the rest arrive best first.
	require.Len(t, matches, 2)
	require.Equal(t, "CAN-00000002", matches[0].CandidateID)
	require.Equal(t, "CAN-00000001", matches[1].CandidateID)
	require.Greater(t, matches[0].Score, matches[1].Score)
	require.Equal(t, []string{"Go"}, matches[0].MatchedSkills)
}

func TestTopMatchesLimitAndNotFound(t *testing.T) {
	t.Parallel()

	st, err := store.Open(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	_, err = TopMatches(st, "POS-MISSING", 5)
	require.ErrorIs(t, err, hr.ErrNotFound)

	require.NoError(t, st.PutPosition(seniorPosition(hr.Skill{Name: "Go", YearsExperience: 1, Proficiency: 1})))
	for i := 1; i <= 4; i++ {
		c := senior(hr.NewCandidateID(), float64(i), hr.Skill{Name: "Go", YearsExperience: float64(i), Proficiency: 3})
		require.NoError(t, st.PutCandidate(c))
	}

	matches, err := TopMatches(st, "POS-00000001", 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)
}
