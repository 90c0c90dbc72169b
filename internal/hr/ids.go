package hr

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	candidatePrefix = "CAN"
	positionPrefix  = "POS"
	interviewPrefix = "INT"
)

func newID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(id[:8]))
}

func NewCandidateID() string { return newID(candidatePrefix) }

func NewPositionID() string { return newID(positionPrefix) }

func NewInterviewID() string { return newID(interviewPrefix) }
