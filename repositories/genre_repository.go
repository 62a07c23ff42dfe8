package repositories

import (
	"gorm.io/gorm"

	"reviewdb/models"
)

type GenreRepository interface {
	Create(genre *models.Genre) error
	GetBySlug(slug string) (*models.Genre, error)
	GetBySlugs(slugs []string) ([]models.Genre, error)
	GetList(params models.ListParams) ([]models.Genre, int64, error)
	DeleteBySlug(slug string) error
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(genre *models.Genre) error {
	return r.db.Create(genre).Error
}

func (r *genreRepository) GetBySlug(slug string) (*models.Genre, error) {
	var genre models.Genre
	err := r.db.Where("slug = ?", slug).First(&genre).Error
	return &genre, err
}

func (r *genreRepository) GetBySlugs(slugs []string) ([]models.Genre, error) {
	var genres []models.Genre
	err := r.db.Where("slug IN ?", slugs).Find(&genres).Error
	return genres, err
}

func (r *genreRepository) GetList(params models.ListParams) ([]models.Genre, int64, error) {
	var genres []models.Genre
	var total int64

	query := r.db.Model(&models.Genre{})
	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("name").Offset(offset).Limit(params.Limit).Find(&genres).Error

	return genres, total, err
}

// DeleteBySlug removes the genre together with its title memberships.
func (r *genreRepository) DeleteBySlug(slug string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var genre models.Genre
		if err := tx.Where("slug = ?", slug).First(&genre).Error; err != nil {
			return err
		}
		if err := tx.Where("genre_id = ?", genre.ID).Delete(&models.GenreTitle{}).Error; err != nil {
			return err
		}
		return tx.Delete(&genre).Error
	})
}
