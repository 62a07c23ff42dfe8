package services

import (
	"errors"

	"gorm.io/gorm"

	"reviewdb/models"
	"reviewdb/repositories"
)

type GenreService interface {
	CreateGenre(req models.CreateGenreRequest) (*models.Genre, error)
	GetGenres(params models.ListParams) ([]models.Genre, int64, error)
	DeleteGenre(slug string) error
}

type genreService struct {
	genreRepo repositories.GenreRepository
}

func NewGenreService(genreRepo repositories.GenreRepository) GenreService {
	return &genreService{genreRepo: genreRepo}
}

func (s *genreService) CreateGenre(req models.CreateGenreRequest) (*models.Genre, error) {
	if err := models.ValidateSlug(req.Slug); err != nil {
		return nil, err
	}

	genre := &models.Genre{Name: req.Name, Slug: req.Slug}
	if err := s.genreRepo.Create(genre); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewValidationError("slug", "slug is already in use")
		}
		return nil, err
	}
	return genre, nil
}

func (s *genreService) GetGenres(params models.ListParams) ([]models.Genre, int64, error) {
	return s.genreRepo.GetList(params)
}

func (s *genreService) DeleteGenre(slug string) error {
	if err := s.genreRepo.DeleteBySlug(slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return nil
}
