package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/dto"
	"github.com/seerwright/daggle/mappers"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/utils"
)

// ListRuleTemplates returns the predefined templates in display order.
func ListRuleTemplates(c *gin.Context) {
	var templates []models.RuleTemplate
	database.DB.Order("display_order asc").Find(&templates)
	utils.Success(c, "success", templates)
}

// GetCompetitionRules returns the sponsor-facing rule selection.
func GetCompetitionRules(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}

	var rules []models.CompetitionRule
	database.DB.Preload("Template").
		Where("competition_id = ?", competition.ID).
		Order("display_order asc").Find(&rules)

	items := make([]dto.RuleResp, 0, len(rules))
	for _, r := range rules {
		items = append(items, mappers.MapRuleToResp(r))
	}
	utils.Success(c, "success", items)
}

// SetCompetitionRules replaces the full rule selection for a competition.
// Each entry references a template (with an optional parameter value) or
// carries custom text.
func SetCompetitionRules(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	if !requireCompetitionOwner(c, competition) {
		return
	}

	var req dto.SetRulesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}

	// Validate template references up front so the replace never half-applies.
	for _, sel := range req.Rules {
		if sel.RuleTemplateID == nil && sel.CustomText == "" {
			utils.Error(c, utils.CodeInvalidParams, "Each rule needs a template reference or custom text")
			return
		}
		if sel.RuleTemplateID != nil {
			var tpl models.RuleTemplate
			if err := database.DB.First(&tpl, *sel.RuleTemplateID).Error; err != nil {
				utils.Error(c, utils.CodeNotFound, "Rule template not found")
				return
			}
		}
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("competition_id = ?", competition.ID).
			Delete(&models.CompetitionRule{}).Error; err != nil {
			return err
		}
		for i, sel := range req.Rules {
			enabled := true
			if sel.IsEnabled != nil {
				enabled = *sel.IsEnabled
			}
			order := sel.DisplayOrder
			if order == 0 {
				order = i + 1
			}
			rule := models.CompetitionRule{
				CompetitionID:  competition.ID,
				RuleTemplateID: sel.RuleTemplateID,
				IsEnabled:      enabled,
				ParameterValue: sel.ParameterValue,
				CustomText:     sel.CustomText,
				DisplayOrder:   order,
			}
			if err := tx.Create(&rule).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to save rules")
		return
	}

	GetCompetitionRules(c)
}

// GetCompetitionRulesDisplay returns the enabled rules rendered for the
// public rules page, parameters substituted.
func GetCompetitionRulesDisplay(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}

	var rules []models.CompetitionRule
	database.DB.Preload("Template").
		Where("competition_id = ? AND is_enabled = ?", competition.ID, true).
		Order("display_order asc").Find(&rules)

	items := make([]dto.RuleDisplayResp, 0, len(rules))
	for _, r := range rules {
		items = append(items, mappers.MapRuleToDisplayResp(r))
	}
	utils.Success(c, "success", items)
}
