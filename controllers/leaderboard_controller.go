package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/seerwright/daggle/services"
	"github.com/seerwright/daggle/utils"
)

// GetLeaderboard returns the ranked standings for a competition.
func GetLeaderboard(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	entries, err := services.GetLeaderboard(competition.ID, limit)
	if err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to load leaderboard")
		return
	}
	utils.Success(c, "success", gin.H{
		"metric":          competition.EvaluationMetric,
		"lower_is_better": services.IsLowerBetter(competition.EvaluationMetric),
		"entries":         entries,
	})
}
