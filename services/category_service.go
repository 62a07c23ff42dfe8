package services

import (
	"errors"

	"gorm.io/gorm"

	"reviewdb/models"
	"reviewdb/repositories"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	GetCategories(params models.ListParams) ([]models.Category, int64, error)
	DeleteCategory(slug string) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	if err := models.ValidateSlug(req.Slug); err != nil {
		return nil, err
	}

	category := &models.Category{Name: req.Name, Slug: req.Slug}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewValidationError("slug", "slug is already in use")
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategories(params models.ListParams) ([]models.Category, int64, error) {
	return s.categoryRepo.GetList(params)
}

func (s *categoryService) DeleteCategory(slug string) error {
	if err := s.categoryRepo.DeleteBySlug(slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return nil
}
