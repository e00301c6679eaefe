package services

import (
	"errors"

	"gorm.io/gorm"

	"fluffyrudy-blog-api/helper"
	"fluffyrudy-blog-api/models"
	"fluffyrudy-blog-api/repositories"
)

type PostService interface {
	Create(req models.PostCreateRequest) (*models.Post, error)
	Update(id uint, req models.PostCreateRequest) (*models.Post, error)
	Delete(id uint) error
	Get(id uint) (*models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
	List(params models.PostListParams) ([]models.Post, int64, error)
}

type postService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// prepareTags normalizes and validates the submitted tag names. Validation
// happens here as well as in the editing UI, so malformed names cannot enter
// the store through direct API calls.
func (s *postService) prepareTags(raw []string) ([]string, error) {
	names := helper.NormalizeTagNames(raw)
	status := helper.ValidateTags(names)
	if len(status.Invalid) > 0 {
		return nil, models.ErrorValidation{
			Message: "invalid tag names",
			Invalid: status.Invalid,
		}
	}
	return status.Valid, nil
}

func (s *postService) Create(req models.PostCreateRequest) (*models.Post, error) {
	tagNames, err := s.prepareTags(req.Tags)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	post := &models.Post{
		Title:      req.Title,
		Slug:       helper.CreateSlug(req.Title),
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		Status:     status,
	}

	if err := s.postRepo.CreateWithTags(post, tagNames); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "a post with this title already exists"}
		}
		return nil, err
	}

	return post, nil
}

func (s *postService) Update(id uint, req models.PostCreateRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Resource: "post"}
		}
		return nil, err
	}

	tagNames, err := s.prepareTags(req.Tags)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	// The slug is recomputed on every update. Same title, same slug.
	post.Title = req.Title
	post.Slug = helper.CreateSlug(req.Title)
	post.Content = req.Content
	post.Excerpt = req.Excerpt
	post.CoverImage = req.CoverImage
	post.Status = status

	if err := s.postRepo.UpdateWithTags(post, tagNames); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "a post with this title already exists"}
		}
		return nil, err
	}

	return post, nil
}

func (s *postService) Delete(id uint) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Resource: "post"}
		}
		return err
	}

	return s.postRepo.Delete(post)
}

func (s *postService) Get(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Resource: "post"}
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) GetBySlug(slug string) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Resource: "post"}
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) List(params models.PostListParams) ([]models.Post, int64, error) {
	return s.postRepo.GetList(params)
}
