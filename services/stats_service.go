package services

import (
	"fluffyrudy-blog-api/models"
	"fluffyrudy-blog-api/repositories"
)

type StatsService interface {
	GetStats() (*models.StatsResponse, error)
}

type statsService struct {
	postRepo repositories.PostRepository
	tagRepo  repositories.TagRepository
}

func NewStatsService(postRepo repositories.PostRepository, tagRepo repositories.TagRepository) StatsService {
	return &statsService{postRepo: postRepo, tagRepo: tagRepo}
}

func (s *statsService) GetStats() (*models.StatsResponse, error) {
	totalPosts, err := s.postRepo.Count("")
	if err != nil {
		return nil, err
	}

	publishedPosts, err := s.postRepo.Count(models.StatusPublished)
	if err != nil {
		return nil, err
	}

	draftPosts, err := s.postRepo.Count(models.StatusDraft)
	if err != nil {
		return nil, err
	}

	totalTags, err := s.tagRepo.Count()
	if err != nil {
		return nil, err
	}

	return &models.StatsResponse{
		TotalPosts:     totalPosts,
		PublishedPosts: publishedPosts,
		DraftPosts:     draftPosts,
		TotalTags:      totalTags,
	}, nil
}
