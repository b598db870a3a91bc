package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewRecord encodes v as one element of a user's record sequence.
func NewRecord[T any](v T) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return b, nil
}

// DecodeRecord decodes one element of a record sequence into a T.
func DecodeRecord[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode record: %w", err)
	}
	return v, nil
}

// AssessmentResult is the record the CLI stores after a questionnaire run.
type AssessmentResult struct {
	ID          string         `json:"id"`
	Assessment  string         `json:"assessment"`
	Answers     []int          `json:"answers"`
	Scores      map[string]int `json:"scores"`
	CompletedAt time.Time      `json:"completedAt"`
}

// NewAssessmentResult stamps a result with a fresh id and completion time.
func NewAssessmentResult(assessment string, answers []int, scores map[string]int, now time.Time) AssessmentResult {
	return AssessmentResult{
		ID:          uuid.NewString(),
		Assessment:  assessment,
		Answers:     answers,
		Scores:      scores,
		CompletedAt: now.UTC(),
	}
}
