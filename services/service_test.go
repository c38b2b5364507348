package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/models"
)

// setupTestDB points the shared connection at an in-memory sqlite database
// scoped to this test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	require.NoError(t, database.MigrateTables())
	return db
}

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	prev := database.RDB
	database.RDB = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { database.RDB = prev })
	return mr
}

func createTestUser(t *testing.T, username string) models.User {
	t.Helper()
	user := models.User{
		Email:    username + "@example.com",
		Username: username,
		Password: "password123",
		Role:     models.RoleParticipant,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createScoredSubmission(t *testing.T, competitionID, userID uint32, score float64, scoredAt time.Time) {
	t.Helper()
	sub := models.Submission{
		CompetitionID: competitionID,
		UserID:        userID,
		FileName:      "submission.csv",
		FilePath:      "submissions/submission.csv",
		Status:        models.SubmissionStatusScored,
		Score:         &score,
		SubmittedAt:   scoredAt,
		ScoredAt:      &scoredAt,
	}
	require.NoError(t, database.DB.Create(&sub).Error)
}
