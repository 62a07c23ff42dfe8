package models

type Title struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"not null"`
	Year        int       `json:"year" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	CategoryID  *uint     `json:"-"`
	Category    *Category `json:"category" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Genres      []Genre   `json:"genre" gorm:"many2many:genre_titles;constraint:OnDelete:CASCADE"`
	// Rating is computed from reviews on every read (AVG subquery); the
	// column is never written by the application.
	Rating *float64 `json:"rating" gorm:"->"`
}

// GenreTitle is the genre/title join row. Rows exist only while both sides
// do; membership is implied by existence.
type GenreTitle struct {
	ID      uint `json:"id" gorm:"primarykey"`
	GenreID uint `json:"genre_id" gorm:"not null;uniqueIndex:idx_genre_title"`
	TitleID uint `json:"title_id" gorm:"not null;uniqueIndex:idx_genre_title"`
}
