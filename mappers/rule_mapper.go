package mappers

import (
	"github.com/seerwright/daggle/dto"
	"github.com/seerwright/daggle/models"
)

func MapRuleToResp(r models.CompetitionRule) dto.RuleResp {
	resp := dto.RuleResp{
		ID:             r.ID,
		RuleTemplateID: r.RuleTemplateID,
		ParameterValue: r.ParameterValue,
		CustomText:     r.CustomText,
		IsEnabled:      r.IsEnabled,
		DisplayOrder:   r.DisplayOrder,
	}
	if r.Template != nil {
		resp.Category = r.Template.Category
		resp.Title = r.Template.Title
	}
	return resp
}

func MapRuleToDisplayResp(r models.CompetitionRule) dto.RuleDisplayResp {
	resp := dto.RuleDisplayResp{Text: r.RenderedText()}
	if r.Template != nil {
		resp.Category = r.Template.Category
		resp.Title = r.Template.Title
	}
	return resp
}
