package dto

import (
	"strings"
	"time"
)

// ========== request DTOs ==========

type CreateCompetitionReq struct {
	Title                string    `json:"title" binding:"required,min=3,max=255"`
	ShortDescription     string    `json:"short_description" binding:"required,min=10,max=500"`
	Description          string    `json:"description" binding:"required,min=10"`
	Difficulty           string    `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	EvaluationMetric     string    `json:"evaluation_metric" binding:"required,min=1,max=100"`
	StartDate            time.Time `json:"start_date" binding:"required"`
	EndDate              time.Time `json:"end_date" binding:"required"`
	MaxTeamSize          int       `json:"max_team_size" binding:"omitempty,min=1,max=10"`
	DailySubmissionLimit int       `json:"daily_submission_limit" binding:"omitempty,min=1,max=100"`
	IsPublic             *bool     `json:"is_public"`
}

// Normalize trims text fields and applies defaults for the optional knobs.
func (r *CreateCompetitionReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.ShortDescription = strings.TrimSpace(r.ShortDescription)
	r.Description = strings.TrimSpace(r.Description)
	r.EvaluationMetric = strings.ToLower(strings.TrimSpace(r.EvaluationMetric))
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))

	if r.MaxTeamSize == 0 {
		r.MaxTeamSize = 1
	}
	if r.DailySubmissionLimit == 0 {
		r.DailySubmissionLimit = 5
	}
	if r.IsPublic == nil {
		public := true
		r.IsPublic = &public
	}
}

type UpdateCompetitionReq struct {
	Title                *string    `json:"title" binding:"omitempty,min=3,max=255"`
	ShortDescription     *string    `json:"short_description" binding:"omitempty,min=10,max=500"`
	Description          *string    `json:"description" binding:"omitempty,min=10"`
	Difficulty           *string    `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	EvaluationMetric     *string    `json:"evaluation_metric" binding:"omitempty,min=1,max=100"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	MaxTeamSize          *int       `json:"max_team_size" binding:"omitempty,min=1,max=10"`
	DailySubmissionLimit *int       `json:"daily_submission_limit" binding:"omitempty,min=1,max=100"`
	IsPublic             *bool      `json:"is_public"`
	Status               *string    `json:"status" binding:"omitempty,oneof=draft active evaluation completed archived"`
}

// ========== response DTOs ==========

type CompetitionResp struct {
	ID                   uint32    `json:"id"`
	Title                string    `json:"title"`
	Slug                 string    `json:"slug"`
	ShortDescription     string    `json:"short_description"`
	Description          string    `json:"description"`
	SponsorID            uint32    `json:"sponsor_id"`
	Status               string    `json:"status"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	Difficulty           string    `json:"difficulty"`
	MaxTeamSize          int       `json:"max_team_size"`
	DailySubmissionLimit int       `json:"daily_submission_limit"`
	EvaluationMetric     string    `json:"evaluation_metric"`
	IsPublic             bool      `json:"is_public"`
	HasTruthSet          bool      `json:"has_truth_set"`
	ThumbnailURL         string    `json:"thumbnail_url,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// CompetitionItemResp is the lighter list shape.
type CompetitionItemResp struct {
	ID               uint32    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
	Status           string    `json:"status"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Difficulty       string    `json:"difficulty"`
	IsPublic         bool      `json:"is_public"`
	ThumbnailURL     string    `json:"thumbnail_url,omitempty"`
}
