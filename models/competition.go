package models

import (
	"time"
)

type CompetitionStatus string
type Difficulty string

const (
	CompetitionStatusDraft      CompetitionStatus = "draft"
	CompetitionStatusActive     CompetitionStatus = "active"
	CompetitionStatusEvaluation CompetitionStatus = "evaluation"
	CompetitionStatusCompleted  CompetitionStatus = "completed"
	CompetitionStatusArchived   CompetitionStatus = "archived"

	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type Competition struct {
	ID               uint32            `gorm:"primarykey"`
	Title            string            `gorm:"size:255;not null;index"`
	Slug             string            `gorm:"size:255;unique;not null;index"`
	Description      string            `gorm:"type:text;not null"`
	ShortDescription string            `gorm:"size:500;not null"`
	SponsorID        uint32            `gorm:"not null;index"`
	Sponsor          *User             `gorm:"foreignKey:SponsorID"`
	Status           CompetitionStatus `gorm:"size:20;not null;default:'draft'"`
	StartDate        time.Time         `gorm:"not null"`
	EndDate          time.Time         `gorm:"not null"`

	Difficulty           Difficulty `gorm:"size:20;not null"`
	MaxTeamSize          int        `gorm:"not null;default:1"`
	DailySubmissionLimit int        `gorm:"not null;default:5"`
	EvaluationMetric     string     `gorm:"size:100;not null"`
	EvaluationDescription string    `gorm:"type:text"`
	IsPublic             bool       `gorm:"not null;default:true"`

	// Filesystem references managed by the upload controller.
	TrainDataPath        string `gorm:"size:500"`
	TestDataPath         string `gorm:"size:500"`
	SampleSubmissionPath string `gorm:"size:500"`
	SolutionPath         string `gorm:"size:500"`
	ThumbnailPath        string `gorm:"size:500"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Competition) TableName() string {
	return "daggle_competition"
}

// HasTruthSet reports whether a scoring truth set has been uploaded.
func (c *Competition) HasTruthSet() bool {
	return c.SolutionPath != ""
}

// AcceptsSubmissions reports whether the competition takes submissions at the
// given instant. The stored status must be active and the instant must fall
// inside the start/end window.
func (c *Competition) AcceptsSubmissions(now time.Time) bool {
	return c.Status == CompetitionStatusActive &&
		!now.Before(c.StartDate) && !now.After(c.EndDate)
}
