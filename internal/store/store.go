package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"hrkeeper/internal/hr"

	"go.uber.org/zap"
)

const (
	candidatesFile = "candidates.json"
	positionsFile  = "positions.json"
	interviewsFile = "interviews.json"

	// ResumesDir holds opaque attachment files referenced by
	// Candidate.ResumePath. The store never reads their content.
	ResumesDir = "resumes"
)

// Store owns the three record maps and their JSON files under a data
// directory. It assumes a single writer in a single process: there is no
// file locking and no internal synchronization, so integrators who add
// concurrency must serialize mutations and Save calls themselves.
type Store struct {
	dir    string
	logger *zap.Logger

	candidates map[string]*hr.Candidate
	positions  map[string]*hr.JobPosition
	interviews map[string]*hr.Interview
}

// Open creates the data directory layout if needed and loads any existing
// record files. A missing file yields an empty collection so a first run
// against an empty directory succeeds.
func Open(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, ResumesDir), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	s := &Store{
		dir:        dir,
		logger:     logger,
		candidates: make(map[string]*hr.Candidate),
		positions:  make(map[string]*hr.JobPosition),
		interviews: make(map[string]*hr.Interview),
	}

	if err := loadFile(filepath.Join(dir, candidatesFile), s.candidates, func(c *hr.Candidate) string { return c.ID }); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, positionsFile), s.positions, func(p *hr.JobPosition) string { return p.ID }); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, interviewsFile), s.interviews, func(i *hr.Interview) string { return i.ID }); err != nil {
		return nil, err
	}

	logger.Debug("store loaded",
		zap.String("dir", dir),
		zap.Int("candidates", len(s.candidates)),
		zap.Int("positions", len(s.positions)),
		zap.Int("interviews", len(s.interviews)),
	)

	return s, nil
}

// Dir returns the data directory the store was opened with.
func (s *Store) Dir() string { return s.dir }

// Save writes all three collections back to their JSON files. Each file is
// written to a temporary file in the same directory and renamed over the
// target, so a failed write leaves the previous content intact. Records are
// ordered by id, making repeated saves of unchanged state byte-identical.
func (s *Store) Save() error {
	if err := saveFile(filepath.Join(s.dir, candidatesFile), sortedValues(s.candidates)); err != nil {
		return err
	}
	if err := saveFile(filepath.Join(s.dir, positionsFile), sortedValues(s.positions)); err != nil {
		return err
	}
	if err := saveFile(filepath.Join(s.dir, interviewsFile), sortedValues(s.interviews)); err != nil {
		return err
	}

	s.logger.Debug("store saved", zap.String("dir", s.dir))
	return nil
}

func (s *Store) PutCandidate(c *hr.Candidate) error {
	if c == nil {
		return fmt.Errorf("%w: nil candidate", hr.ErrValidation)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	s.candidates[c.ID] = c
	s.logger.Debug("stored candidate", zap.String("candidate_id", c.ID))
	return nil
}

func (s *Store) GetCandidate(id string) (*hr.Candidate, error) {
	c, ok := s.candidates[id]
	if !ok {
		return nil, fmt.Errorf("%w: candidate %s", hr.ErrNotFound, id)
	}
	return c, nil
}

// DeleteCandidate removes the record. Interviews referencing the candidate
// are kept as orphans.
func (s *Store) DeleteCandidate(id string) error {
	if _, ok := s.candidates[id]; !ok {
		return fmt.Errorf("%w: candidate %s", hr.ErrNotFound, id)
	}
	delete(s.candidates, id)
	s.logger.Debug("deleted candidate", zap.String("candidate_id", id))
	return nil
}

func (s *Store) PutPosition(p *hr.JobPosition) error {
	if p == nil {
		return fmt.Errorf("%w: nil position", hr.ErrValidation)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	s.positions[p.ID] = p
	s.logger.Debug("stored position", zap.String("position_id", p.ID))
	return nil
}

func (s *Store) GetPosition(id string) (*hr.JobPosition, error) {
	p, ok := s.positions[id]
	if !ok {
		return nil, fmt.Errorf("%w: position %s", hr.ErrNotFound, id)
	}
	return p, nil
}

func (s *Store) DeletePosition(id string) error {
	if _, ok := s.positions[id]; !ok {
		return fmt.Errorf("%w: position %s", hr.ErrNotFound, id)
	}
	delete(s.positions, id)
	s.logger.Debug("deleted position", zap.String("position_id", id))
	return nil
}

// PutInterview validates the record and, for new interviews, that both
// references resolve. Updates to an already stored interview skip the
// reference check so orphaned records can still transition status.
func (s *Store) PutInterview(i *hr.Interview) error {
	if i == nil {
		return fmt.Errorf("%w: nil interview", hr.ErrValidation)
	}
	if err := i.Validate(); err != nil {
		return err
	}
	if _, stored := s.interviews[i.ID]; !stored {
		if _, ok := s.candidates[i.CandidateID]; !ok {
			return fmt.Errorf("%w: candidate %s", hr.ErrNotFound, i.CandidateID)
		}
		if _, ok := s.positions[i.PositionID]; !ok {
			return fmt.Errorf("%w: position %s", hr.ErrNotFound, i.PositionID)
		}
	}
	s.interviews[i.ID] = i
	s.logger.Debug("stored interview", zap.String("interview_id", i.ID))
	return nil
}

func (s *Store) GetInterview(id string) (*hr.Interview, error) {
	i, ok := s.interviews[id]
	if !ok {
		return nil, fmt.Errorf("%w: interview %s", hr.ErrNotFound, id)
	}
	return i, nil
}

func (s *Store) DeleteInterview(id string) error {
	if _, ok := s.interviews[id]; !ok {
		return fmt.Errorf("%w: interview %s", hr.ErrNotFound, id)
	}
	delete(s.interviews, id)
	s.logger.Debug("deleted interview", zap.String("interview_id", id))
	return nil
}

// Candidates returns all candidates ordered by id. The slice is fresh but
// the records are shared; callers must not mutate them during iteration.
func (s *Store) Candidates() []*hr.Candidate {
	return sortedValues(s.candidates)
}

func (s *Store) Positions() []*hr.JobPosition {
	return sortedValues(s.positions)
}

func (s *Store) Interviews() []*hr.Interview {
	return sortedValues(s.interviews)
}

// InterviewsForCandidate returns interviews referencing the candidate,
// including orphans whose position was deleted.
func (s *Store) InterviewsForCandidate(candidateID string) []*hr.Interview {
	matched := make([]*hr.Interview, 0)
	for _, i := range s.Interviews() {
		if i.CandidateID == candidateID {
			matched = append(matched, i)
		}
	}
	return matched
}

func loadFile[T any](path string, dst map[string]*T, id func(*T) string) error {
	items, err := readRecords[T](path)
	if err != nil {
		return err
	}
	for _, item := range items {
		dst[id(item)] = item
	}
	return nil
}

func sortedValues[T any](m map[string]*T) []*T {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make([]*T, 0, len(m))
	for _, key := range keys {
		values = append(values, m[key])
	}
	return values
}
