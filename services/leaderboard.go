package services

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/utils"
)

var leaderboardCacheTTL = 15 * time.Second

// SetLeaderboardCacheTTL overrides the redis cache TTL (used at startup).
func SetLeaderboardCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		leaderboardCacheTTL = ttl
	}
}

// RebuildLeaderboard recomputes the cached ranking for one competition from
// its scored submissions: best score per user, ties broken by earliest scored
// time. The cache table swap runs in a single transaction; the redis cache is
// invalidated afterwards.
func RebuildLeaderboard(competition models.Competition) error {
	type userBest struct {
		UserID       uint32
		Username     string
		BestScore    float64
		Entries      int
		LastScoredAt time.Time
		FirstBestAt  time.Time
	}

	direction := "MAX(s.score)"
	order := "best_score desc, first_best_at asc"
	if IsLowerBetter(competition.EvaluationMetric) {
		direction = "MIN(s.score)"
		order = "best_score asc, first_best_at asc"
	}

	var bests []userBest
	err := database.DB.Table("daggle_submission s").
		Select(direction+" as best_score, s.user_id, u.username, COUNT(*) as entries, MAX(s.scored_at) as last_scored_at, MIN(s.scored_at) as first_best_at").
		Joins("JOIN daggle_user u ON s.user_id = u.id").
		Where("s.competition_id = ? AND s.status = ?", competition.ID, models.SubmissionStatusScored).
		Group("s.user_id, u.username").
		Order(order).
		Scan(&bests).Error
	if err != nil {
		return err
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("competition_id = ?", competition.ID).
			Delete(&models.LeaderboardEntry{}).Error; err != nil {
			return err
		}
		for i, b := range bests {
			entry := models.LeaderboardEntry{
				CompetitionID: competition.ID,
				UserID:        b.UserID,
				Username:      b.Username,
				BestScore:     b.BestScore,
				Entries:       b.Entries,
				LastScoredAt:  b.LastScoredAt,
				Rank:          i + 1,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Drop stale redis entries so the next read repopulates from the table.
	if database.RDB != nil {
		pattern := fmt.Sprintf("leaderboard:%d:*", competition.ID)
		if keys, err := database.RDB.Keys(database.Ctx, pattern).Result(); err == nil && len(keys) > 0 {
			database.RDB.Del(database.Ctx, keys...)
		}
	}

	utils.Log.Infow("leaderboard rebuilt", "competition_id", competition.ID, "entries", len(bests))
	return nil
}

// GetLeaderboard returns the top entries, redis-cached with a short TTL.
func GetLeaderboard(competitionID uint32, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	cacheKey := fmt.Sprintf("leaderboard:%d:%d", competitionID, limit)
	if database.RDB != nil {
		if val, err := database.RDB.Get(database.Ctx, cacheKey).Result(); err == nil {
			var cached []models.LeaderboardEntry
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	var entries []models.LeaderboardEntry
	err := database.DB.Where("competition_id = ?", competitionID).
		Order("rank asc").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}

	if database.RDB != nil {
		if data, err := json.Marshal(entries); err == nil {
			database.RDB.Set(database.Ctx, cacheKey, data, leaderboardCacheTTL)
		}
	}
	return entries, nil
}
