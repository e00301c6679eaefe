package models

import "time"

type PostStatus string

const (
	StatusDraft     PostStatus = "DRAFT"
	StatusPublished PostStatus = "PUBLISHED"
)

// Post is a content item. Title and slug are unique across all posts; the
// slug is derived from the title and never set by clients. Tags are a
// many-to-many relation, deleting a post removes only the association rows.
type Post struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	Title      string     `json:"title" gorm:"uniqueIndex;not null"`
	Slug       string     `json:"slug" gorm:"uniqueIndex;not null"`
	Content    string     `json:"content,omitempty" gorm:"type:text"`
	Excerpt    string     `json:"excerpt" gorm:"size:500"`
	CoverImage string     `json:"coverImage"`
	Status     PostStatus `json:"status" gorm:"type:varchar(16);default:'DRAFT';not null"`
	Tags       []Tag      `json:"tags" gorm:"many2many:post_tags;"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
