package controllers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/services"
	"github.com/seerwright/daggle/utils"
)

var thumbnailExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

var maxThumbnailSize int64 = 5 << 20
var maxDataFileSize int64 = 100 << 20

// SetUploadLimits overrides the per-kind size caps (called at startup).
func SetUploadLimits(thumbnail, dataFile int64) {
	if thumbnail > 0 {
		maxThumbnailSize = thumbnail
	}
	if dataFile > 0 {
		maxDataFileSize = dataFile
	}
}

// UploadThumbnail stores a competition cover image. PNG/JPG/JPEG/WebP, 5MB cap.
func UploadThumbnail(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	if !requireCompetitionOwner(c, competition) {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Missing file")
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !thumbnailExtensions[ext] {
		utils.Error(c, utils.CodeInvalidParams, "File must be an image (.png, .jpg, .jpeg, .webp)")
		return
	}
	if file.Size > maxThumbnailSize {
		utils.Error(c, utils.CodeInvalidParams, fmt.Sprintf("File exceeds the %d MB limit", maxThumbnailSize>>20))
		return
	}

	dst, err := services.UploadPath("thumbnails", fmt.Sprint(competition.ID), "thumbnail"+ext)
	if err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to prepare upload directory")
		return
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to save file")
		return
	}

	if err := database.DB.Model(&competition).Update("thumbnail_path", dst).Error; err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to update competition")
		return
	}

	utils.Success(c, "Thumbnail uploaded", gin.H{
		"thumbnail_url": services.PathToURL(dst),
	})
}

// UploadDataFile stores a train/test/sample-submission data file and records
// its sha256.
func UploadDataFile(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	if !requireCompetitionOwner(c, competition) {
		return
	}

	kind := models.FileKind(c.PostForm("kind"))
	if kind != models.FileKindTrain && kind != models.FileKindTest && kind != models.FileKindSampleSubmission {
		utils.Error(c, utils.CodeInvalidParams, "kind must be one of: train, test, sample_submission")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Missing file")
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".csv" && ext != ".zip" {
		utils.Error(c, utils.CodeInvalidParams, "File must be a CSV or ZIP")
		return
	}
	if file.Size > maxDataFileSize {
		utils.Error(c, utils.CodeInvalidParams, fmt.Sprintf("File exceeds the %d MB limit", maxDataFileSize>>20))
		return
	}

	dst, err := services.UploadPath("data", fmt.Sprint(competition.ID), string(kind)+ext)
	if err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to prepare upload directory")
		return
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to save file")
		return
	}

	sum, err := services.HashFile(dst)
	if err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to hash file")
		return
	}

	record := models.CompetitionFile{
		CompetitionID: competition.ID,
		Kind:          kind,
		FileName:      file.Filename,
		Path:          dst,
		ContentType:   file.Header.Get("Content-Type"),
		FileSize:      file.Size,
		SHA256:        sum,
		UploadedBy:    currentUserID(c),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to record file")
		return
	}

	// Keep the quick-access path column on the competition in sync.
	column := map[models.FileKind]string{
		models.FileKindTrain:            "train_data_path",
		models.FileKindTest:             "test_data_path",
		models.FileKindSampleSubmission: "sample_submission_path",
	}[kind]
	database.DB.Model(&competition).Update(column, dst)

	utils.Created(c, "File uploaded", gin.H{
		"id":        record.ID,
		"kind":      record.Kind,
		"file_name": record.FileName,
		"size":      record.FileSize,
		"sha256":    record.SHA256,
	})
}

// UploadTruthSet stores the scoring truth set. The CSV must carry id and
// target columns; it is validated before it replaces the previous one.
func UploadTruthSet(c *gin.Context) {
	competition, ok := findCompetitionBySlug(c)
	if !ok {
		return
	}
	if !requireCompetitionOwner(c, competition) {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Missing file")
		return
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".csv" {
		utils.Error(c, utils.CodeInvalidParams, "File must be a CSV file")
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

	if err := services.ValidateTruthSet(content); err != nil {
		utils.Error(c, utils.CodeInvalidParams, err.Error())
		return
	}

	dst, err := services.UploadPath("solutions", fmt.Sprint(competition.ID), "solution.csv")
	if err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to prepare upload directory")
		return
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to save file")
		return
	}

	if err := database.DB.Model(&competition).Update("solution_path", dst).Error; err != nil {
		utils.Error(c, utils.CodeInternal, "Failed to update competition")
		return
	}

	utils.Success(c, "Truth set uploaded", gin.H{"has_truth_set": true})
}

// ServeUpload streams a stored file. The wildcard path may not escape the
// upload root.
func ServeUpload(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("filepath"), "/")
	full, err := services.ResolveUpload(rel)
	if err != nil {
		utils.Error(c, utils.CodeForbidden, "Access denied")
		return
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		utils.Error(c, utils.CodeNotFound, "File not found")
		return
	}
	c.File(full)
}
