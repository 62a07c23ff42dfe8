package models

import "time"

type Review struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	AuthorID uint   `json:"-" gorm:"not null;uniqueIndex:idx_review_author_title;constraint:OnDelete:CASCADE"`
	Author   User   `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	TitleID  uint   `json:"title_id" gorm:"not null;uniqueIndex:idx_review_author_title"`
	Title    *Title `json:"-" gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE"`
	Text     string `json:"text" gorm:"type:text;not null"`
	Score    int    `json:"score" gorm:"not null"`
	// PubDate is server-assigned on creation and never updated afterwards.
	PubDate time.Time `json:"pub_date" gorm:"autoCreateTime;<-:create"`
}

// AuthorName is what list/detail responses show instead of the numeric id.
func (r Review) AuthorName() string {
	return r.Author.Username
}
