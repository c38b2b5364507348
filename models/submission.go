package models

import (
	"time"
)

type SubmissionStatus string

const (
	SubmissionStatusPending SubmissionStatus = "pending"
	SubmissionStatusScored  SubmissionStatus = "scored"
	SubmissionStatusFailed  SubmissionStatus = "failed"
)

type Submission struct {
	ID            uint64           `gorm:"primarykey"`
	CompetitionID uint32           `gorm:"not null;index"`
	UserID        uint32           `gorm:"not null;index"`
	FileName      string           `gorm:"size:255;not null"`
	FilePath      string           `gorm:"size:500;not null"`
	Status        SubmissionStatus `gorm:"size:20;not null;default:'pending'"`
	Score         *float64
	ErrorMessage  string `gorm:"size:500"`
	SubmittedAt   time.Time
	ScoredAt      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Submission) TableName() string {
	return "daggle_submission"
}
