package repositories

import (
	"gorm.io/gorm"

	"fluffyrudy-blog-api/models"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByID(id uint) (*models.Tag, error)
	GetAllWithPostCount() ([]models.Tag, error)
	Update(tag *models.Tag) error
	Delete(id uint) error
	CountPosts(id uint) (int64, error)
	Count() (int64, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

// GetAllWithPostCount returns every tag with its association count, ordered
// by name ascending.
func (r *tagRepository) GetAllWithPostCount() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Model(&models.Tag{}).
		Select("tags.*, count(post_tags.post_id) as post_count").
		Joins("LEFT JOIN post_tags ON post_tags.tag_id = tags.id").
		Group("tags.id").
		Order("tags.name asc").
		Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

func (r *tagRepository) Delete(id uint) error {
	return r.db.Delete(&models.Tag{}, id).Error
}

// CountPosts counts the posts currently associated with the tag.
func (r *tagRepository) CountPosts(id uint) (int64, error) {
	var count int64
	err := r.db.Table("post_tags").Where("tag_id = ?", id).Count(&count).Error
	return count, err
}

func (r *tagRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Count(&count).Error
	return count, err
}
