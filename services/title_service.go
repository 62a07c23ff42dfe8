package services

import (
	"errors"

	"gorm.io/gorm"

	"reviewdb/models"
	"reviewdb/repositories"
)

type TitleService interface {
	CreateTitle(req models.CreateTitleRequest) (*models.Title, error)
	GetTitle(id uint) (*models.Title, error)
	GetTitles(params models.TitleListParams) ([]models.Title, int64, error)
	UpdateTitle(id uint, req models.UpdateTitleRequest) (*models.Title, error)
	DeleteTitle(id uint) error
}

type titleService struct {
	titleRepo    repositories.TitleRepository
	categoryRepo repositories.CategoryRepository
	genreRepo    repositories.GenreRepository
}

func NewTitleService(titleRepo repositories.TitleRepository, categoryRepo repositories.CategoryRepository, genreRepo repositories.GenreRepository) TitleService {
	return &titleService{
		titleRepo:    titleRepo,
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
	}
}

func (s *titleService) CreateTitle(req models.CreateTitleRequest) (*models.Title, error) {
	if err := models.ValidateYear(req.Year); err != nil {
		return nil, err
	}

	title := &models.Title{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
	}

	if req.Category != "" {
		category, err := s.resolveCategory(req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}

	genres, err := s.resolveGenres(req.Genre)
	if err != nil {
		return nil, err
	}
	title.Genres = genres

	if err := s.titleRepo.Create(title); err != nil {
		return nil, err
	}
	return s.GetTitle(title.ID)
}

func (s *titleService) GetTitle(id uint) (*models.Title, error) {
	title, err := s.titleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return title, nil
}

func (s *titleService) GetTitles(params models.TitleListParams) ([]models.Title, int64, error) {
	return s.titleRepo.GetList(params)
}

func (s *titleService) UpdateTitle(id uint, req models.UpdateTitleRequest) (*models.Title, error) {
	title, err := s.GetTitle(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		if err := models.ValidateYear(*req.Year); err != nil {
			return nil, err
		}
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = *req.Description
	}
	if req.Category != nil {
		if *req.Category == "" {
			title.CategoryID = nil
		} else {
			category, err := s.resolveCategory(*req.Category)
			if err != nil {
				return nil, err
			}
			title.CategoryID = &category.ID
		}
	}

	if err := s.titleRepo.Update(title); err != nil {
		return nil, err
	}

	if req.Genre != nil {
		genres, err := s.resolveGenres(*req.Genre)
		if err != nil {
			return nil, err
		}
		if err := s.titleRepo.ReplaceGenres(title, genres); err != nil {
			return nil, err
		}
	}

	return s.GetTitle(id)
}

func (s *titleService) DeleteTitle(id uint) error {
	if err := s.titleRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *titleService) resolveCategory(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewValidationError("category", "unknown category slug")
		}
		return nil, err
	}
	return category, nil
}

func (s *titleService) resolveGenres(slugs []string) ([]models.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	genres, err := s.genreRepo.GetBySlugs(slugs)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(slugs) {
		return nil, models.NewValidationError("genre", "unknown genre slug")
	}
	return genres, nil
}
