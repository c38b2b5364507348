package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/dto"
	"github.com/seerwright/daggle/mappers"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/services"
	"github.com/seerwright/daggle/utils"
)

// CreateCompetition handles POST /competitions. Sponsor or admin only.
// Field constraints are enforced by the binding tags; the date order is a
// cross-field check the binder cannot express.
func CreateCompetition(c *gin.Context) {
	var req dto.CreateCompetitionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	if !req.EndDate.After(req.StartDate) {
		utils.Error(c, utils.CodeInvalidParams, "End date must be after start date")
		return
	}
	if !services.IsKnownMetric(req.EvaluationMetric) {
		utils.Error(c, utils.CodeInvalidParams, "Unknown evaluation metric: "+req.EvaluationMetric)
		return
	}

	competition := mappers.MapCreateReqToCompetition(req, currentUserID(c))
	competition.Slug = services.UniqueSlug(req.Title, 0)

	if err := database.DB.Create(&competition).Error; err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to create competition")
		return
	}

	utils.Created(c, "Competition created", mappers.MapCompetitionToResp(competition))
}

// ListCompetitions returns active public competitions, paginated.
func ListCompetitions(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var competitions []models.Competition
	database.DB.Where("is_public = ? AND status = ?", true, models.CompetitionStatusActive).
		Order("start_date desc").Offset(skip).Limit(limit).Find(&competitions)

	items := make([]dto.CompetitionItemResp, 0, len(competitions))
	for _, comp := range competitions {
		items = append(items, mappers.MapCompetitionToItemResp(comp))
	}
	utils.Success(c, "success", items)
}

// ListMyCompetitions returns competitions sponsored by the caller.
func ListMyCompetitions(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var competitions []models.Competition
	database.DB.Where("sponsor_id = ?", currentUserID(c)).
		Order("created_at desc").Offset(skip).Limit(limit).Find(&competitions)

	items := make([]dto.CompetitionItemResp, 0, len(competitions))
	for _, comp := range competitions {
		items = append(items, mappers.MapCompetitionToItemResp(comp))
	}
	utils.Success(c, "success", items)
}

func GetCompetition(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	utils.Success(c, "success", mappers.MapCompetitionToResp(competition))
}

// UpdateCompetition applies a partial update. A title change regenerates the
// slug; a date change revalidates the window against the resulting pair.
func UpdateCompetition(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	if !requireCompetitionOwner(c, competition) {
		return
	}

	var req dto.UpdateCompetitionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}

	start := competition.StartDate
	end := competition.EndDate
	if req.StartDate != nil {
		start = req.StartDate.UTC()
	}
	if req.EndDate != nil {
		end = req.EndDate.UTC()
	}
	if !end.After(start) {
		utils.Error(c, utils.CodeInvalidParams, "End date must be after start date")
		return
	}

	if req.Title != nil {
		competition.Title = *req.Title
		competition.Slug = services.UniqueSlug(*req.Title, competition.ID)
	}
	if req.ShortDescription != nil {
		competition.ShortDescription = *req.ShortDescription
	}
	if req.Description != nil {
		competition.Description = *req.Description
	}
	if req.Difficulty != nil {
		competition.Difficulty = models.Difficulty(*req.Difficulty)
	}
	if req.EvaluationMetric != nil {
		if !services.IsKnownMetric(*req.EvaluationMetric) {
			utils.Error(c, utils.CodeInvalidParams, "Unknown evaluation metric: "+*req.EvaluationMetric)
			return
		}
		competition.EvaluationMetric = *req.EvaluationMetric
	}
	competition.StartDate = start
	competition.EndDate = end
	if req.MaxTeamSize != nil {
		competition.MaxTeamSize = *req.MaxTeamSize
	}
	if req.DailySubmissionLimit != nil {
		competition.DailySubmissionLimit = *req.DailySubmissionLimit
	}
	if req.IsPublic != nil {
		competition.IsPublic = *req.IsPublic
	}
	if req.Status != nil {
		competition.Status = models.CompetitionStatus(*req.Status)
	}

	if err := database.DB.Save(&competition).Error; err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to update competition")
		return
	}
	utils.Success(c, "Competition updated", mappers.MapCompetitionToResp(competition))
}

func DeleteCompetition(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	if !requireCompetitionOwner(c, competition) {
		return
	}

	if err := database.DB.Delete(&competition).Error; err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to delete competition")
		return
	}
	utils.Success(c, "Competition deleted", nil)
}
