package models

import (
	"time"
)

type FAQ struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	CompetitionID uint32    `gorm:"not null;index" json:"competition_id"`
	Question      string    `gorm:"size:500;not null" json:"question"`
	Answer        string    `gorm:"type:text;not null" json:"answer"`
	DisplayOrder  int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (FAQ) TableName() string {
	return "daggle_faq"
}
