package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/dto"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/utils"
)

func Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		utils.Error(c, utils.CodeDuplicate, "Email or username already registered")
		return
	}

	role := models.RoleParticipant
	if req.Role == string(models.RoleSponsor) {
		role = models.RoleSponsor
	}

	newUser := models.User{
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        role,
		IsActive:    true,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, utils.CodeInternal, "Database error: "+err.Error())
		return
	}

	utils.Created(c, "User registered successfully", gin.H{
		"id":           newUser.ID,
		"email":        newUser.Email,
		"username":     newUser.Username,
		"display_name": newUser.DisplayName,
		"role":         newUser.Role,
	})
}

func Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Error(c, utils.CodeBadCredentials, "Incorrect email or password")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, utils.CodeBadCredentials, "Incorrect email or password")
		return
	}
	if !user.IsActive {
		utils.Error(c, utils.CodeAccountDisabled, "Account is disabled")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to generate token")
		return
	}

	now := time.Now().UTC()
	database.DB.Model(&user).Update("last_login", now)

	utils.Success(c, "Login success", gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"username":     user.Username,
			"display_name": user.DisplayName,
			"role":         user.Role,
		},
	})
}
