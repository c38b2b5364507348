package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/dto"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/utils"
)

func GetProfile(c *gin.Context) {
	userID := currentUserID(c)
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, utils.CodeNotFound, "User not found")
		return
	}
	utils.Success(c, "success", gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"username":     user.Username,
		"display_name": user.DisplayName,
		"role":         user.Role,
		"last_login":   user.LastLogin,
		"created_at":   user.CreatedAt,
	})
}

func UpdateProfile(c *gin.Context) {
	userID := currentUserID(c)
	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, utils.CodeNotFound, "User not found")
		return
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			utils.Error(c, utils.CodeInternal, "Failed to update password")
			return
		}
	}
	if err := database.DB.Save(&user).Error; err != nil {
		utils.Error(c, utils.CodeInternal, "Database error: "+err.Error())
		return
	}

	utils.Success(c, "Profile updated", gin.H{
		"id":           user.ID,
		"display_name": user.DisplayName,
	})
}
