package models

import (
	"time"
)

type FileKind string

const (
	FileKindTrain            FileKind = "train"
	FileKindTest             FileKind = "test"
	FileKindSampleSubmission FileKind = "sample_submission"
)

// CompetitionFile is a data file attached to a competition (training data,
// test data, sample submission). Truth sets and thumbnails are tracked on the
// competition row itself since they are singletons.
type CompetitionFile struct {
	ID            uint64   `gorm:"primarykey"`
	CompetitionID uint32   `gorm:"not null;index"`
	Kind          FileKind `gorm:"size:30;not null"`
	FileName      string   `gorm:"size:255;not null"`
	Path          string   `gorm:"size:500;not null"`
	ContentType   string   `gorm:"size:255;not null"`
	FileSize      int64    `gorm:"not null;default:0"`
	SHA256        string   `gorm:"size:64;not null"`
	UploadedBy    uint32   `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (CompetitionFile) TableName() string {
	return "daggle_competition_file"
}
