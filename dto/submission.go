package dto

import (
	"time"
)

type SubmissionResp struct {
	ID          uint64     `json:"id"`
	FileName    string     `json:"file_name"`
	Status      string     `json:"status"`
	Score       *float64   `json:"score,omitempty"`
	Error       string     `json:"error,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ScoredAt    *time.Time `json:"scored_at,omitempty"`
}
