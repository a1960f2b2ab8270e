package models

import (
	"gorm.io/datatypes"
)

// Storage buckets. Paths inside a bucket are always {userID}/{fileName}.
const (
	BucketAvatars       = "avatars"
	BucketCovers        = "covers"
	BucketServiceImages = "service-images"
)

// Upload is the bookkeeping row for every object written to storage.
type Upload struct {
	BaseModel
	UserID   string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Bucket   string         `gorm:"not null;index" json:"bucket"`
	Path     string         `gorm:"not null;uniqueIndex" json:"path"`
	MimeType string         `json:"mime_type"`
	Size     int64          `json:"size"`
	Metadata datatypes.JSON `json:"metadata,omitempty"`
}
