package models

type Category struct {
	ID   uint   `json:"-" gorm:"primarykey"`
	Name string `json:"name" gorm:"not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:50;not null"`
}
