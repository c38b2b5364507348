package mappers

import (
	"github.com/seerwright/daggle/dto"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/services"
)

func MapCreateReqToCompetition(req dto.CreateCompetitionReq, sponsorID uint32) models.Competition {
	return models.Competition{
		Title:                req.Title,
		ShortDescription:     req.ShortDescription,
		Description:          req.Description,
		SponsorID:            sponsorID,
		Status:               models.CompetitionStatusDraft,
		StartDate:            req.StartDate.UTC(),
		EndDate:              req.EndDate.UTC(),
		Difficulty:           models.Difficulty(req.Difficulty),
		MaxTeamSize:          req.MaxTeamSize,
		DailySubmissionLimit: req.DailySubmissionLimit,
		EvaluationMetric:     req.EvaluationMetric,
		IsPublic:             *req.IsPublic,
	}
}

func MapCompetitionToResp(c models.Competition) dto.CompetitionResp {
	return dto.CompetitionResp{
		ID:                   c.ID,
		Title:                c.Title,
		Slug:                 c.Slug,
		ShortDescription:     c.ShortDescription,
		Description:          c.Description,
		SponsorID:            c.SponsorID,
		Status:               string(c.Status),
		StartDate:            c.StartDate,
		EndDate:              c.EndDate,
		Difficulty:           string(c.Difficulty),
		MaxTeamSize:          c.MaxTeamSize,
		DailySubmissionLimit: c.DailySubmissionLimit,
		EvaluationMetric:     c.EvaluationMetric,
		IsPublic:             c.IsPublic,
		HasTruthSet:          c.HasTruthSet(),
		ThumbnailURL:         services.PathToURL(c.ThumbnailPath),
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func MapCompetitionToItemResp(c models.Competition) dto.CompetitionItemResp {
	return dto.CompetitionItemResp{
		ID:               c.ID,
		Title:            c.Title,
		Slug:             c.Slug,
		ShortDescription: c.ShortDescription,
		Status:           string(c.Status),
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		Difficulty:       string(c.Difficulty),
		IsPublic:         c.IsPublic,
		ThumbnailURL:     services.PathToURL(c.ThumbnailPath),
	}
}
