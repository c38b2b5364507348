package mappers

import (
	"github.com/seerwright/daggle/dto"
	"github.com/seerwright/daggle/models"
)

func MapSubmissionToResp(s models.Submission) dto.SubmissionResp {
	return dto.SubmissionResp{
		ID:          s.ID,
		FileName:    s.FileName,
		Status:      string(s.Status),
		Score:       s.Score,
		Error:       s.ErrorMessage,
		SubmittedAt: s.SubmittedAt,
		ScoredAt:    s.ScoredAt,
	}
}
