// Package schedule creates and transitions interview records. Scheduling is
// validated against the store; the notification side effect never rolls a
// stored interview back.
package schedule

import (
	"context"
	"fmt"
	"time"

	"hrkeeper/internal/hr"
	"hrkeeper/internal/notify"
	"hrkeeper/internal/store"

	"go.uber.org/zap"
)

// Request carries the input for a new interview.
type Request struct {
	CandidateID string
	PositionID  string
	Interviewer string
	Time        time.Time
	Type        hr.InterviewType
	Location    string
	// Duration is in minutes.
	Duration int
}

type Scheduler struct {
	store    *store.Store
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func New(st *store.Store, notifier notify.Notifier, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		store:    st,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Schedule validates the request, stores the interview, advances the
// candidate into the interviewing stage and dispatches a notification.
// Double-booking is rejected: an overlapping non-cancelled interview for the
// same candidate or the same interviewer fails with hr.ErrConflict.
func (s *Scheduler) Schedule(ctx context.Context, req Request) (*hr.Interview, error) {
	candidate, err := s.store.GetCandidate(req.CandidateID)
	if err != nil {
		return nil, err
	}
	position, err := s.store.GetPosition(req.PositionID)
	if err != nil {
		return nil, err
	}

	if err := s.validTime(req.Time); err != nil {
		return nil, err
	}
	if req.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration %d must be positive", hr.ErrInvalidDuration, req.Duration)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: %q", hr.ErrInvalidType, req.Type)
	}

	interview := &hr.Interview{
		ID:          hr.NewInterviewID(),
		CandidateID: req.CandidateID,
		PositionID:  req.PositionID,
		Interviewer: req.Interviewer,
		ScheduledAt: req.Time,
		Type:        req.Type,
		Location:    req.Location,
		Duration:    req.Duration,
		Status:      hr.InterviewScheduled,
		CreatedAt:   s.now().UTC().Truncate(time.Second),
	}

	if err := s.checkConflicts(interview, ""); err != nil {
		return nil, err
	}

	if err := s.store.PutInterview(interview); err != nil {
		return nil, err
	}

	candidate.Status = hr.CandidateInterviewing

	if err := s.store.Save(); err != nil {
		return nil, fmt.Errorf("saving interview %s: %w", interview.ID, err)
	}

	s.logger.Info("interview scheduled",
		zap.String("interview_id", interview.ID),
		zap.String("candidate_id", candidate.ID),
		zap.String("position_id", position.ID),
		zap.Time("scheduled_time", interview.ScheduledAt),
	)

	s.sendNotification(ctx, candidate, position, interview)

	return interview, nil
}

// Reschedule moves an interview to a new time and marks it RESCHEDULED.
func (s *Scheduler) Reschedule(id string, newTime time.Time) (*hr.Interview, error) {
	interview, err := s.store.GetInterview(id)
	if err != nil {
		return nil, err
	}
	if err := s.validTime(newTime); err != nil {
		return nil, err
	}

	moved := *interview
	moved.ScheduledAt = newTime
	if err := s.checkConflicts(&moved, id); err != nil {
		return nil, err
	}

	interview.ScheduledAt = newTime
	interview.Status = hr.InterviewRescheduled

	if err := s.store.Save(); err != nil {
		return nil, fmt.Errorf("saving interview %s: %w", id, err)
	}

	s.logger.Info("interview rescheduled",
		zap.String("interview_id", id),
		zap.Time("scheduled_time", newTime),
	)
	return interview, nil
}

// Cancel marks the interview CANCELLED. The record is kept for history.
func (s *Scheduler) Cancel(id string) (*hr.Interview, error) {
	return s.transition(id, hr.InterviewCancelled)
}

// Complete marks the interview COMPLETED.
func (s *Scheduler) Complete(id string) (*hr.Interview, error) {
	return s.transition(id, hr.InterviewCompleted)
}

func (s *Scheduler) transition(id string, status hr.InterviewStatus) (*hr.Interview, error) {
	interview, err := s.store.GetInterview(id)
	if err != nil {
		return nil, err
	}

	interview.Status = status

	if err := s.store.Save(); err != nil {
		return nil, fmt.Errorf("saving interview %s: %w", id, err)
	}

	s.logger.Info("interview status changed",
		zap.String("interview_id", id),
		zap.String("status", status.String()),
	)
	return interview, nil
}

func (s *Scheduler) validTime(t time.Time) error {
	if t.IsZero() {
		return fmt.Errorf("%w: scheduled time is not set", hr.ErrInvalidTime)
	}
	if t.Before(s.now()) {
		return fmt.Errorf("%w: scheduled time %s is in the past", hr.ErrInvalidTime, t.Format(time.RFC3339))
	}
	return nil
}

// checkConflicts scans the stored interviews for an overlapping window
// involving the same candidate or interviewer. Cancelled interviews and the
// interview identified by excludeID do not count.
func (s *Scheduler) checkConflicts(interview *hr.Interview, excludeID string) error {
	for _, existing := range s.store.Interviews() {
		if existing.ID == excludeID || existing.Status == hr.InterviewCancelled {
			continue
		}
		if existing.CandidateID != interview.CandidateID && existing.Interviewer != interview.Interviewer {
			continue
		}
		if existing.Overlaps(interview) {
			return fmt.Errorf("%w: overlaps interview %s at %s",
				hr.ErrConflict, existing.ID, existing.ScheduledAt.Format(time.RFC3339))
		}
	}
	return nil
}

// sendNotification is best-effort: a failure is logged as a warning and
// never unwinds the already persisted interview.
func (s *Scheduler) sendNotification(ctx context.Context, candidate *hr.Candidate, position *hr.JobPosition, interview *hr.Interview) {
	if candidate.Email == "" {
		s.logger.Warn("candidate has no email, skipping notification",
			zap.String("candidate_id", candidate.ID),
		)
		return
	}

	subject := fmt.Sprintf("Interview scheduled: %s", position.Title)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour %s interview for the %s position is scheduled for %s (%d minutes) with %s.\nLocation: %s\n",
		candidate.Name,
		interview.Type,
		position.Title,
		interview.ScheduledAt.Format("2006-01-02 15:04"),
		interview.Duration,
		interview.Interviewer,
		interview.Location,
	)

	if err := s.notifier.Send(ctx, candidate.Email, subject, body); err != nil {
		s.logger.Warn("notification failed, interview is kept",
			zap.String("interview_id", interview.ID),
			zap.String("recipient", candidate.Email),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("notification sent",
		zap.String("interview_id", interview.ID),
		zap.String("recipient", candidate.Email),
	)
}
