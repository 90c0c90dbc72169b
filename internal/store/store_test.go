package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hrkeeper/internal/hr"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testCandidate(id string) *hr.Candidate {
	return &hr.Candidate{
		ID:         id,
		Name:       "Jane Smith",
		Email:      "jane.smith@example.com",
		TotalYears: 6,
		Education:  "BSc Computer Science",
		Status:     hr.CandidateApplied,
		Salary:     hr.SalaryRange{Min: 100000, Max: 130000},
		Skills: []hr.Skill{
			{Name: "Python", YearsExperience: 5, Proficiency: 5},
			{Name: "Django", YearsExperience: 3, Proficiency: 4},
		},
		AppliedAt: time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func testPosition(id string) *hr.JobPosition {
	return &hr.JobPosition{
		ID:     id,
		Title:  "Senior Software Engineer",
		Level:  hr.LevelSenior,
		Status: hr.JobOpen,
		RequiredSkills: []hr.Skill{
			{Name: "Python", YearsExperience: 3, Proficiency: 3},
		},
		OpenedAt: time.Date(2030, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func testInterview(id, candidateID, positionID string) *hr.Interview {
	return &hr.Interview{
		ID:          id,
		CandidateID: candidateID,
		PositionID:  positionID,
		Interviewer: "John Doe",
		ScheduledAt: time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC),
		Type:        hr.InterviewTechnical,
		Duration:    60,
		Status:      hr.InterviewScheduled,
		CreatedAt:   time.Date(2030, 5, 20, 12, 0, 0, 0, time.UTC),
	}
}

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	st, err := Open(dir, zap.NewNop())
	require.NoError(t, err)
	return st
}

func TestOpenEmptyDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := openTestStore(t, dir)

	require.Empty(t, st.Candidates())
	require.Empty(t, st.Positions())
	require.Empty(t, st.Interviews())

	// First run creates the attachment directory.
	info, err := os.Stat(filepath.Join(dir, ResumesDir))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := openTestStore(t, dir)

	require.NoError(t, st.PutCandidate(testCandidate("CAN-00000001")))
	require.NoError(t, st.PutCandidate(testCandidate("CAN-00000002")))
	require.NoError(t, st.PutPosition(testPosition("POS-00000001")))
	require.NoError(t, st.PutInterview(testInterview("INT-00000001", "CAN-00000001", "POS-00000001")))
	require.NoError(t, st.Save())

	reloaded := openTestStore(t, dir)
	require.Equal(t, st.Candidates(), reloaded.Candidates())
	require.Equal(t, st.Positions(), reloaded.Positions())
	require.Equal(t, st.Interviews(), reloaded.Interviews())
}

func TestSaveIsIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := openTestStore(t, dir)

	require.NoError(t, st.PutCandidate(testCandidate("CAN-00000002")))
	require.NoError(t, st.PutCandidate(testCandidate("CAN-00000001")))
	require.NoError(t, st.Save())

	first, err := os.ReadFile(filepath.Join(dir, "candidates.json"))
	require.NoError(t, err)

	require.NoError(t, st.Save())

	second, err := os.ReadFile(filepath.Join(dir, "candidates.json"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestPutCandidateValidates(t *testing.T) {
	t.Parallel()

	st := openTestStore(t, t.TempDir())

	bad := testCandidate("CAN-00000001")
	bad.Salary = hr.SalaryRange{Min: 200000, Max: 100000}

	require.ErrorIs(t, st.PutCandidate(bad), hr.ErrValidation)
	require.Empty(t, st.Candidates())
}

func TestGetAndDeleteNotFound(t *testing.T) {
	t.Parallel()

	st := openTestStore(t, t.TempDir())

	_, err := st.GetCandidate("CAN-MISSING")
	require.ErrorIs(t, err, hr.ErrNotFound)
	_, err = st.GetPosition("POS-MISSING")
	require.ErrorIs(t, err, hr.ErrNotFound)
	_, err = st.GetInterview("INT-MISSING")
	require.ErrorIs(t, err, hr.ErrNotFound)

	require.ErrorIs(t, st.DeleteCandidate("CAN-MISSING"), hr.ErrNotFound)
	require.ErrorIs(t, st.DeletePosition("POS-MISSING"), hr.ErrNotFound)
	require.ErrorIs(t, st.DeleteInterview("INT-MISSING"), hr.ErrNotFound)
}

func TestPutInterviewRequiresReferences(t *testing.T) {
	t.Parallel()

	st := openTestStore(t, t.TempDir())

	err := st.PutInterview(testInterview("INT-00000001", "CAN-MISSING", "POS-MISSING"))
	require.ErrorIs(t, err, hr.ErrNotFound)
	require.Empty(t, st.Interviews())
}

func TestOrphanedInterviewsSurviveDeletes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := openTestStore(t, dir)

	require.NoError(t, st.PutCandidate(testCandidate("CAN-00000001")))
	require.NoError(t, st.PutPosition(testPosition("POS-00000001")))
	require.NoError(t, st.PutInterview(testInterview("INT-00000001", "CAN-00000001", "POS-00000001")))

	require.NoError(t, st.DeleteCandidate("CAN-00000001"))
	require.NoError(t, st.Save())

	reloaded := openTestStore(t, dir)
	interviews := reloaded.InterviewsForCandidate("CAN-00000001")
	require.Len(t, interviews, 1)
	require.Equal(t, "INT-00000001", interviews[0].ID)

	_, err := reloaded.GetCandidate("CAN-00000001")
	require.ErrorIs(t, err, hr.ErrNotFound)
}

func TestSavedFilesAreArrays(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := openTestStore(t, dir)
	require.NoError(t, st.Save())

	for _, name := range []string{"candidates.json", "positions.json", "interviews.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		require.Equal(t, "[]\n", string(data))
	}
}
