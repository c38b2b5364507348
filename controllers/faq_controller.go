package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/dto"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/utils"
)

func ListFAQs(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	var faqs []models.FAQ
	database.DB.Where("competition_id = ?", competition.ID).
		Order("display_order asc").Find(&faqs)
	utils.Success(c, "success", faqs)
}

func CreateFAQ(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	if !requireCompetitionOwner(c, competition) {
		return
	}

	var req dto.CreateFAQReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}

	faq := models.FAQ{
		CompetitionID: competition.ID,
		Question:      req.Question,
		Answer:        req.Answer,
		DisplayOrder:  req.DisplayOrder,
	}
	if err := database.DB.Create(&faq).Error; err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to create FAQ")
		return
	}
	utils.Created(c, "FAQ created", faq)
}

// findFAQ loads the :faq_id FAQ belonging to the competition.
func findFAQ(c *gin.Context, competition models.Competition) (models.FAQ, bool) {
	var faq models.FAQ
	faqID, err := strconv.ParseUint(c.Param("faq_id"), 10, 64)
	if err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid FAQ id")
		return faq, false
	}
	if err := database.DB.First(&faq, faqID).Error; err != nil || faq.CompetitionID != competition.ID {
		utils.Error(c, utils.CodeNotFound, "FAQ not found")
		return faq, false
	}
	return faq, true
}

func UpdateFAQ(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	if !requireCompetitionOwner(c, competition) {
		return
	}
	faq, ok := findFAQ(c, competition)
	if !ok {
		return
	}

	var req dto.UpdateFAQReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}
	if req.Question != nil {
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		faq.Answer = *req.Answer
	}
	if req.DisplayOrder != nil {
		faq.DisplayOrder = *req.DisplayOrder
	}
	if err := database.DB.Save(&faq).Error; err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to update FAQ")
		return
	}
	utils.Success(c, "FAQ updated", faq)
}

func DeleteFAQ(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	if !requireCompetitionOwner(c, competition) {
		return
	}
	faq, ok := findFAQ(c, competition)
	if !ok {
		return
	}

	database.DB.Delete(&faq)
	utils.Success(c, "FAQ deleted", nil)
}

// ReorderFAQs rewrites display_order to match the given id sequence.
func ReorderFAQs(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	if !requireCompetitionOwner(c, competition) {
		return
	}

	var req dto.ReorderFAQsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}

	for i, id := range req.FAQIDs {
		database.DB.Model(&models.FAQ{}).
			Where("id = ? AND competition_id = ?", id, competition.ID).
			Update("display_order", i+1)
	}

	ListFAQs(c)
}
