package controllers

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/dto"
	"github.com/seerwright/daggle/mappers"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/services"
	"github.com/seerwright/daggle/utils"
)

// SubmitPredictions accepts a prediction CSV, validates it, and scores it
// synchronously against the competition's truth set.
func SubmitPredictions(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	userID := currentUserID(c)

	now := time.Now().UTC()
	if competition.Status != models.CompetitionStatusActive {
		utils.Error(c, utils.CodeInvalidParams, "Competition is not accepting submissions")
		return
	}
	if now.Before(competition.StartDate) {
		utils.Error(c, utils.CodeInvalidParams, "Competition has not started yet")
		return
	}
	if now.After(competition.EndDate) {
		utils.Error(c, utils.CodeInvalidParams, "Submission deadline has passed")
		return
	}

	var enrollment models.Enrollment
	if err := database.DB.Where("competition_id = ? AND user_id = ?", competition.ID, userID).
		First(&enrollment).Error; err != nil {
		utils.Error(c, utils.CodeForbidden, "Enroll in the competition before submitting")
		return
	}

	// Daily limit counts submissions since UTC midnight.
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var todayCount int64
	database.DB.Model(&models.Submission{}).
		Where("competition_id = ? AND user_id = ? AND submitted_at >= ?", competition.ID, userID, dayStart).
		Count(&todayCount)
	if todayCount >= int64(competition.DailySubmissionLimit) {
		utils.Error(c, utils.CodeDailyLimit,
			fmt.Sprintf("Daily submission limit (%d) reached", competition.DailySubmissionLimit))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Missing file")
		return
	}
	src, err := file.Open()
	if err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to read file")
		return
	}
	content, readErr := io.ReadAll(src)
	src.Close()
	if readErr != nil {
		utils.Error(c, utils.CodeInternal, "Failed to read file")
		return
	}

	validation := services.ValidateSubmission(content, "id", "prediction")
	if !validation.Valid {
		utils.Error(c, utils.CodeInvalidParams, "Invalid submission: "+validation.ErrorSummary())
		return
	}

	dst, err := services.UploadPath("submissions", fmt.Sprint(competition.ID), fmt.Sprint(userID),
		fmt.Sprintf("%d-%s", now.UnixNano(), file.Filename))
	if err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to prepare upload directory")
		return
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to save file")
		return
	}

	submission := models.Submission{
		CompetitionID: competition.ID,
		UserID:        userID,
		FileName:      file.Filename,
		FilePath:      dst,
		Status:        models.SubmissionStatusPending,
		SubmittedAt:   now,
	}
	if err := database.DB.Create(&submission).Error; err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to record submission")
		return
	}

	scoreSubmission(&submission, competition, validation)

	utils.Created(c, "Submission received", mappers.MapSubmissionToResp(submission))
}

// scoreSubmission runs the scorer and persists the outcome. Scoring failures
// mark the submission failed but never fail the request.
func scoreSubmission(submission *models.Submission, competition models.Competition, validation services.ValidationResult) {
	fail := func(msg string) {
		submission.Status = models.SubmissionStatusFailed
		submission.ErrorMessage = msg
		database.DB.Save(submission)
	}

	if !competition.HasTruthSet() {
		fail("No truth set uploaded for this competition")
		return
	}
	solution, err := services.LoadSolution(competition.SolutionPath)
	if err != nil {
		utils.Log.Errorw("failed to load solution", "competition_id", competition.ID, "err", err)
		fail("Scoring is temporarily unavailable")
		return
	}
	score, err := services.ScoreSubmission(validation, solution, competition.EvaluationMetric)
	if err != nil {
		fail(err.Error())
		return
	}

	scoredAt := time.Now().UTC()
	submission.Status = models.SubmissionStatusScored
	submission.Score = &score
	submission.ScoredAt = &scoredAt
	if err := database.DB.Save(submission).Error; err != nil {
		utils.Log.Errorw("failed to persist score", "submission_id", submission.ID, "err", err)
		return
	}

	if err := services.RebuildLeaderboard(competition); err != nil {
		utils.Log.Errorw("leaderboard rebuild failed", "competition_id", competition.ID, "err", err)
	}
}

// ListMySubmissions returns the caller's submissions, newest first.
func ListMySubmissions(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}

	var submissions []models.Submission
	database.DB.Where("competition_id = ? AND user_id = ?", competition.ID, currentUserID(c)).
		Order("submitted_at desc").Limit(100).Find(&submissions)

	items := make([]dto.SubmissionResp, 0, len(submissions))
	for _, s := range submissions {
		items = append(items, mappers.MapSubmissionToResp(s))
	}
	utils.Success(c, "success", items)
}
