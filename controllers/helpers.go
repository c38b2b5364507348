package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/utils"
)

// currentUserID reads the authenticated user id placed on the context by the
// JWT middleware. Zero means unauthenticated.
func currentUserID(c *gin.Context) uint32 {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint32); ok {
			return id
		}
	}
	return 0
}

// findCompetitionBySlug loads the competition for the :slug route param,
// replying 404 through the envelope when absent. Returns false if the
// response has already been written.
func findCompetitionBySlug(c *gin.Context) (models.Competition, bool) {
	var competition models.Competition
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&competition).Error; err != nil {
		utils.Error(c, utils.CodeNotFound, "Competition not found")
		return competition, false
	}
	return competition, true
}

// requireCompetitionOwner checks that the caller sponsors the competition or
// is an admin. Writes the error response on failure.
func requireCompetitionOwner(c *gin.Context, competition models.Competition) bool {
	userID := currentUserID(c)
	role, _ := c.Get("user_role")
	if competition.SponsorID == userID || role == models.RoleAdmin {
		return true
	}
	utils.Error(c, utils.CodeForbidden, "You don't have permission to manage this competition")
	return false
}
