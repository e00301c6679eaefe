package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fluffyrudy-blog-api/models"
)

type PostRepository interface {
	CreateWithTags(post *models.Post, tagNames []string) error
	UpdateWithTags(post *models.Post, tagNames []string) error
	GetByID(id uint) (*models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
	GetList(params models.PostListParams) ([]models.Post, int64, error)
	Delete(post *models.Post) error
	Count(status models.PostStatus) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// connectOrCreateTags resolves tag names to rows inside tx, creating any
// that do not exist yet. A tag that already exists is reused, never an error.
func connectOrCreateTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		err := tx.Where("name = ?", name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name}
			err = tx.Create(&tag).Error
		}
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// CreateWithTags persists the post and its tag associations as a single
// transaction. The transaction is the only mutual exclusion in the system.
func (r *postRepository) CreateWithTags(post *models.Post, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		tags, err := connectOrCreateTags(tx, tagNames)
		if err != nil {
			return err
		}
		post.Tags = tags
		return tx.Create(post).Error
	})
}

// UpdateWithTags saves the post fields and replaces the entire tag
// association set in one transaction. This is a full replace, not a merge.
func (r *postRepository) UpdateWithTags(post *models.Post, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		tags, err := connectOrCreateTags(tx, tagNames)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(post).Error; err != nil {
			return err
		}
		if err := tx.Model(post).Association("Tags").Replace(&tags); err != nil {
			return err
		}
		post.Tags = tags
		return nil
	})
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Tags").First(&post, id).Error
	return &post, err
}

func (r *postRepository) GetBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Tags").Where("slug = ?", slug).First(&post).Error
	return &post, err
}

func (r *postRepository) GetList(params models.PostListParams) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{}).Preload("Tags")

	if params.Status != "" {
		query = query.Where("posts.status = ?", params.Status)
	}

	if params.Tag != "" {
		query = query.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.name = ?", params.Tag)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Content can be large; list views skip it unless asked for.
	if params.IncludeContent {
		query = query.Select("posts.*")
	} else {
		query = query.Select(
			"posts.id", "posts.title", "posts.slug", "posts.excerpt",
			"posts.cover_image", "posts.status", "posts.created_at", "posts.updated_at",
		)
	}

	err := query.Order("posts.created_at desc").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&posts).Error

	return posts, total, err
}

// Delete removes the post and its association rows. Tags themselves are
// untouched.
func (r *postRepository) Delete(post *models.Post) error {
	return r.db.Select(clause.Associations).Delete(post).Error
}

// Count counts posts, optionally restricted to a status. An empty status
// counts everything.
func (r *postRepository) Count(status models.PostStatus) (int64, error) {
	var count int64
	query := r.db.Model(&models.Post{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}
