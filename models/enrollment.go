package models

import (
	"time"
)

// Enrollment records a participant joining a competition. One row per user
// per competition, enforced by the composite unique index.
type Enrollment struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	CompetitionID uint32    `gorm:"not null;uniqueIndex:idx_enrollment_once" json:"competition_id"`
	UserID        uint32    `gorm:"not null;uniqueIndex:idx_enrollment_once" json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Enrollment) TableName() string {
	return "daggle_enrollment"
}
