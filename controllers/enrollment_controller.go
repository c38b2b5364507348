package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/utils"
)

// Enroll joins the caller into a competition. One enrollment per user.
func Enroll(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	userID := currentUserID(c)

	role, _ := c.Get("user_role")
	if !competition.IsPublic && competition.SponsorID != userID && role != models.RoleAdmin {
		utils.Error(c, utils.CodeForbidden, "Competition is private")
		return
	}

	var existing models.Enrollment
	if err := database.DB.Where("competition_id = ? AND user_id = ?", competition.ID, userID).
		First(&existing).Error; err == nil {
		utils.Error(c, utils.CodeConflict, "Already enrolled in this competition")
		return
	}

	enrollment := models.Enrollment{
		CompetitionID: competition.ID,
		UserID:        userID,
	}
	if err := database.DB.Create(&enrollment).Error; err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to enroll")
		return
	}

	utils.Created(c, "Enrolled", gin.H{
		"id":             enrollment.ID,
		"competition_id": enrollment.CompetitionID,
	})
}

// GetEnrollment reports whether the caller is enrolled.
func GetEnrollment(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}

	var enrollment models.Enrollment
	err := database.DB.Where("competition_id = ? AND user_id = ?", competition.ID, currentUserID(c)).
		First(&enrollment).Error
	if err != nil {
		utils.Success(c, "success", gin.H{"enrolled": false})
		return
	}
	utils.Success(c, "success", gin.H{
		"enrolled":    true,
		"enrolled_at": enrollment.CreatedAt,
	})
}

// Withdraw removes the caller's enrollment.
func Withdraw(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}

	result := database.DB.Where("competition_id = ? AND user_id = ?", competition.ID, currentUserID(c)).
		Delete(&models.Enrollment{})
	if result.RowsAffected == 0 {
		utils.Error(c, utils.CodeNotFound, "Not enrolled in this competition")
		return
	}
	utils.Success(c, "Withdrawn", nil)
}
