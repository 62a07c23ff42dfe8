package models

import "time"

type Comment struct {
	ID       uint      `json:"id" gorm:"primarykey"`
	AuthorID uint      `json:"-" gorm:"not null;constraint:OnDelete:CASCADE"`
	Author   User      `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	ReviewID uint      `json:"review_id" gorm:"not null"`
	Review   *Review   `json:"-" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	Text     string    `json:"text" gorm:"type:text;not null"`
	PubDate  time.Time `json:"pub_date" gorm:"autoCreateTime;<-:create"`
}
