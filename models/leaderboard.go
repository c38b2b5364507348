package models

import (
	"time"
)

// LeaderboardEntry is a cache row rebuilt from scored submissions. Rank is
// assigned per competition at rebuild time.
type LeaderboardEntry struct {
	ID            uint64    `gorm:"primarykey" json:"-"`
	CompetitionID uint32    `gorm:"not null;index" json:"-"`
	UserID        uint32    `gorm:"not null" json:"user_id"`
	Username      string    `gorm:"size:100;not null" json:"username"`
	BestScore     float64   `gorm:"not null" json:"best_score"`
	Entries       int       `gorm:"not null" json:"entries"`
	LastScoredAt  time.Time `json:"last_scored_at"`
	Rank          int       `gorm:"not null" json:"rank"`
	UpdatedAt     time.Time `json:"-"`
}

func (LeaderboardEntry) TableName() string {
	return "daggle_leaderboard"
}
