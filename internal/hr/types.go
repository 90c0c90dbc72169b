package hr

import (
	"fmt"
	"strings"
	"time"
)

const (
	// Proficiency is an ordinal 1-5 scale.
	ProficiencyMin = 1
	ProficiencyMax = 5
)

// Skill is embedded by value in candidates and positions. On a position the
// fields are the required minimums.
type Skill struct {
	Name            string  `json:"name"`
	YearsExperience float64 `json:"years_experience"`
	Proficiency     int     `json:"proficiency"`
}

func (s Skill) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: skill name is empty", ErrValidation)
	}
	if s.YearsExperience < 0 {
		return fmt.Errorf("%w: skill %q has negative years of experience", ErrValidation, s.Name)
	}
	if s.Proficiency < ProficiencyMin || s.Proficiency > ProficiencyMax {
		return fmt.Errorf("%w: skill %q proficiency %d is out of range %d-%d",
			ErrValidation, s.Name, s.Proficiency, ProficiencyMin, ProficiencyMax)
	}
	return nil
}

// SalaryRange bounds are optional; zero means unset.
type SalaryRange struct {
	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`
}

func (r SalaryRange) Validate() error {
	if r.Min < 0 || r.Max < 0 {
		return fmt.Errorf("%w: salary bounds must be non-negative", ErrValidation)
	}
	if r.Min > 0 && r.Max > 0 && r.Min > r.Max {
		return fmt.Errorf("%w: salary range min %.0f is greater than max %.0f", ErrValidation, r.Min, r.Max)
	}
	return nil
}

type Candidate struct {
	ID         string          `json:"candidate_id"`
	Name       string          `json:"name"`
	Email      string          `json:"email,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Skills     []Skill         `json:"skills,omitempty"`
	TotalYears float64         `json:"total_years_experience"`
	Education  string          `json:"education,omitempty"`
	Status     CandidateStatus `json:"status"`
	Salary     SalaryRange     `json:"desired_salary,omitempty"`
	ResumePath string          `json:"resume_path,omitempty"`
	AppliedAt  time.Time       `json:"applied_at,omitempty"`
}

func (c *Candidate) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: candidate id is empty", ErrValidation)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: candidate %s has no name", ErrValidation, c.ID)
	}
	if c.TotalYears < 0 {
		return fmt.Errorf("%w: candidate %s has negative total years of experience", ErrValidation, c.ID)
	}
	if !c.Status.IsValid() {
		return fmt.Errorf("%w: candidate %s has unknown status %q", ErrValidation, c.ID, c.Status)
	}
	if err := c.Salary.Validate(); err != nil {
		return fmt.Errorf("candidate %s: %w", c.ID, err)
	}
	for _, skill := range c.Skills {
		if err := skill.Validate(); err != nil {
			return fmt.Errorf("candidate %s: %w", c.ID, err)
		}
	}
	return nil
}

// SkillByName returns the candidate skill matching name case-insensitively.
func (c *Candidate) SkillByName(name string) (Skill, bool) {
	for _, skill := range c.Skills {
		if strings.EqualFold(skill.Name, name) {
			return skill, true
		}
	}
	return Skill{}, false
}

type JobPosition struct {
	ID             string          `json:"position_id"`
	Title          string          `json:"title"`
	Department     string          `json:"department,omitempty"`
	Location       string          `json:"location,omitempty"`
	Level          ExperienceLevel `json:"experience_level"`
	Description    string          `json:"description,omitempty"`
	RequiredSkills []Skill         `json:"required_skills,omitempty"`
	Status         JobStatus       `json:"status"`
	Salary         SalaryRange     `json:"salary_range,omitempty"`
	OpenedAt       time.Time       `json:"opened_at,omitempty"`
}

func (p *JobPosition) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: position id is empty", ErrValidation)
	}
	if p.Title == "" {
		return fmt.Errorf("%w: position %s has no title", ErrValidation, p.ID)
	}
	if !p.Level.IsValid() {
		return fmt.Errorf("%w: position %s has unknown experience level %q", ErrValidation, p.ID, p.Level)
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("%w: position %s has unknown status %q", ErrValidation, p.ID, p.Status)
	}
	if err := p.Salary.Validate(); err != nil {
		return fmt.Errorf("position %s: %w", p.ID, err)
	}
	for _, skill := range p.RequiredSkills {
		if err := skill.Validate(); err != nil {
			return fmt.Errorf("position %s: %w", p.ID, err)
		}
	}
	return nil
}

// Interview references its candidate and position by id only. The referenced
// records must exist when the interview is created; a reference left dangling
// by a later delete is tolerated on reads.
type Interview struct {
	ID          string          `json:"interview_id"`
	CandidateID string          `json:"candidate_id"`
	PositionID  string          `json:"position_id"`
	Interviewer string          `json:"interviewer"`
	ScheduledAt time.Time       `json:"scheduled_time"`
	Type        InterviewType   `json:"interview_type"`
	Location    string          `json:"location,omitempty"`
	Duration    int             `json:"duration_minutes"`
	Status      InterviewStatus `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
}

func (i *Interview) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("%w: interview id is empty", ErrValidation)
	}
	if i.CandidateID == "" || i.PositionID == "" {
		return fmt.Errorf("%w: interview %s is missing a candidate or position reference", ErrValidation, i.ID)
	}
	if i.Duration <= 0 {
		return fmt.Errorf("%w: interview %s duration must be positive", ErrInvalidDuration, i.ID)
	}
	if !i.Type.IsValid() {
		return fmt.Errorf("%w: interview %s has type %q", ErrInvalidType, i.ID, i.Type)
	}
	if !i.Status.IsValid() {
		return fmt.Errorf("%w: interview %s has unknown status %q", ErrValidation, i.ID, i.Status)
	}
	return nil
}

// End returns the exclusive end of the interview window.
func (i *Interview) End() time.Time {
	return i.ScheduledAt.Add(time.Duration(i.Duration) * time.Minute)
}

// Overlaps reports whether the two interview windows intersect.
func (i *Interview) Overlaps(other *Interview) bool {
	return i.ScheduledAt.Before(other.End()) && other.ScheduledAt.Before(i.End())
}
