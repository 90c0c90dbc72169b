package hr

// ExperienceLevel is the seniority a position requires. Levels are ordered;
// Rank exposes the ordinal for adjacency checks in match scoring.
type ExperienceLevel string

const (
	LevelJunior    ExperienceLevel = "JUNIOR"
	LevelMid       ExperienceLevel = "MID"
	LevelSenior    ExperienceLevel = "SENIOR"
	LevelLead      ExperienceLevel = "LEAD"
	LevelExecutive ExperienceLevel = "EXECUTIVE"
)

var levelRanks = map[ExperienceLevel]int{
	LevelJunior:    0,
	LevelMid:       1,
	LevelSenior:    2,
	LevelLead:      3,
	LevelExecutive: 4,
}

func (l ExperienceLevel) IsValid() bool {
	_, ok := levelRanks[l]
	return ok
}

// Rank returns the ordinal position of the level, or -1 for unknown values.
func (l ExperienceLevel) Rank() int {
	rank, ok := levelRanks[l]
	if !ok {
		return -1
	}
	return rank
}

func (l ExperienceLevel) String() string { return string(l) }

// JobStatus is the lifecycle state of a position.
type JobStatus string

const (
	JobOpen   JobStatus = "OPEN"
	JobClosed JobStatus = "CLOSED"
	JobOnHold JobStatus = "ON_HOLD"
	JobFilled JobStatus = "FILLED"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobOpen, JobClosed, JobOnHold, JobFilled:
		return true
	default:
		return false
	}
}

func (s JobStatus) String() string { return string(s) }

// CandidateStatus tracks a candidate through the hiring pipeline.
type CandidateStatus string

const (
	CandidateApplied      CandidateStatus = "APPLIED"
	CandidateScreening    CandidateStatus = "SCREENING"
	CandidateInterviewing CandidateStatus = "INTERVIEWING"
	CandidateOffered      CandidateStatus = "OFFERED"
	CandidateRejected     CandidateStatus = "REJECTED"
	CandidateHired        CandidateStatus = "HIRED"
)

func (s CandidateStatus) IsValid() bool {
	switch s {
	case CandidateApplied, CandidateScreening, CandidateInterviewing,
		CandidateOffered, CandidateRejected, CandidateHired:
		return true
	default:
		return false
	}
}

func (s CandidateStatus) String() string { return string(s) }

// InterviewType is the format of a scheduled interview.
type InterviewType string

const (
	InterviewPhone     InterviewType = "PHONE"
	InterviewTechnical InterviewType = "TECHNICAL"
	InterviewOnsite    InterviewType = "ONSITE"
	InterviewPanel     InterviewType = "PANEL"
)

func (t InterviewType) IsValid() bool {
	switch t {
	case InterviewPhone, InterviewTechnical, InterviewOnsite, InterviewPanel:
		return true
	default:
		return false
	}
}

func (t InterviewType) String() string { return string(t) }

// InterviewStatus is the state of an interview record. Cancellation is a
// status change, not a removal, so history survives.
type InterviewStatus string

const (
	InterviewScheduled   InterviewStatus = "SCHEDULED"
	InterviewCompleted   InterviewStatus = "COMPLETED"
	InterviewCancelled   InterviewStatus = "CANCELLED"
	InterviewRescheduled InterviewStatus = "RESCHEDULED"
)

func (s InterviewStatus) IsValid() bool {
	switch s {
	case InterviewScheduled, InterviewCompleted, InterviewCancelled, InterviewRescheduled:
		return true
	default:
		return false
	}
}

func (s InterviewStatus) String() string { return string(s) }
