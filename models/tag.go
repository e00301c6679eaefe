package models

import "time"

// Tag is a canonical label attachable to many posts. PostCount is computed
// from the association table when listing, never stored.
type Tag struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	PostCount int64     `json:"postCount" gorm:"->;-:migration"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
