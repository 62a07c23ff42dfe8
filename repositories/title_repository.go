package repositories

import (
	"gorm.io/gorm"

	"reviewdb/models"
)

// ratingSelect decorates title reads with the live review average. The
// stored rating column is never written; this subquery is the source of
// truth for the displayed value.
const ratingSelect = "titles.*, (SELECT AVG(score) FROM reviews WHERE reviews.title_id = titles.id) AS rating"

type TitleRepository interface {
	Create(title *models.Title) error
	GetByID(id uint) (*models.Title, error)
	GetList(params models.TitleListParams) ([]models.Title, int64, error)
	Update(title *models.Title) error
	ReplaceGenres(title *models.Title, genres []models.Genre) error
	Delete(id uint) error
}

type titleRepository struct {
	db *gorm.DB
}

func NewTitleRepository(db *gorm.DB) TitleRepository {
	return &titleRepository{db: db}
}

func (r *titleRepository) Create(title *models.Title) error {
	return r.db.Create(title).Error
}

func (r *titleRepository) GetByID(id uint) (*models.Title, error) {
	var title models.Title
	err := r.db.Preload("Category").Preload("Genres").
		Select(ratingSelect).
		First(&title, id).Error
	return &title, err
}

func (r *titleRepository) GetList(params models.TitleListParams) ([]models.Title, int64, error) {
	var titles []models.Title
	var total int64

	query := r.db.Model(&models.Title{}).Preload("Category").Preload("Genres")

	if params.Category != "" {
		query = query.Joins("JOIN categories ON categories.id = titles.category_id").
			Where("categories.slug = ?", params.Category)
	}
	if params.Genre != "" {
		query = query.Joins("JOIN genre_titles ON genre_titles.title_id = titles.id").
			Joins("JOIN genres ON genres.id = genre_titles.genre_id").
			Where("genres.slug = ?", params.Genre)
	}
	if params.Name != "" {
		query = query.Where("titles.name ILIKE ?", "%"+params.Name+"%")
	}
	if params.Year != 0 {
		query = query.Where("titles.year = ?", params.Year)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Select(ratingSelect).
		Order("titles.name, titles.year").
		Offset(offset).Limit(params.Limit).
		Find(&titles).Error

	return titles, total, err
}

func (r *titleRepository) Update(title *models.Title) error {
	// Save skips the read-only rating field and the associations; genre
	// changes go through ReplaceGenres, category changes through CategoryID.
	return r.db.Omit("Genres", "Category").Save(title).Error
}

func (r *titleRepository) ReplaceGenres(title *models.Title, genres []models.Genre) error {
	return r.db.Model(title).Association("Genres").Replace(genres)
}

// Delete removes the title, its genre memberships and, through FK cascades,
// its reviews and their comments.
func (r *titleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("title_id = ?", id).Delete(&models.GenreTitle{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Title{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
