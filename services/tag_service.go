package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"fluffyrudy-blog-api/models"
	"fluffyrudy-blog-api/repositories"
)

type TagService interface {
	Create(req models.TagRequest) (*models.Tag, error)
	Rename(id uint, req models.TagRequest) (*models.Tag, error)
	Delete(id uint) error
	List() ([]models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func normalizeTagName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

func (s *tagService) Create(req models.TagRequest) (*models.Tag, error) {
	name := normalizeTagName(req.Name)
	if name == "" {
		return nil, models.ErrorValidation{Message: "tag name is required"}
	}

	tag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "tag already exists"}
		}
		return nil, err
	}

	return tag, nil
}

func (s *tagService) Rename(id uint, req models.TagRequest) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Resource: "tag"}
		}
		return nil, err
	}

	name := normalizeTagName(req.Name)
	if name == "" {
		return nil, models.ErrorValidation{Message: "tag name is required"}
	}

	tag.Name = name
	if err := s.tagRepo.Update(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "tag already exists"}
		}
		return nil, err
	}

	count, err := s.tagRepo.CountPosts(tag.ID)
	if err != nil {
		return nil, err
	}
	tag.PostCount = count

	return tag, nil
}

// Delete removes a tag, refusing while any post still references it. The
// error carries the blocking count.
func (s *tagService) Delete(id uint) error {
	if _, err := s.tagRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Resource: "tag"}
		}
		return err
	}

	count, err := s.tagRepo.CountPosts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrorInUse{
			Message:   "Cannot delete tag with associated posts",
			PostCount: count,
		}
	}

	return s.tagRepo.Delete(id)
}

func (s *tagService) List() ([]models.Tag, error) {
	return s.tagRepo.GetAllWithPostCount()
}
