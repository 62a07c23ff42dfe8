package models

import "time"

type SignupRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email,max=254"`
}

type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenRequest fields carry no binding tags: absence of either field is a
// distinct failure mode with its own status code, checked in the service.
type TokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateUserRequest struct {
	Username string   `json:"username" validate:"required,max=150"`
	Email    string   `json:"email" validate:"required,email,max=254"`
	Bio      string   `json:"bio"`
	Role     UserRole `json:"role,omitempty"`
}

type UpdateUserRequest struct {
	Email *string   `json:"email" validate:"omitempty,email,max=254"`
	Bio   *string   `json:"bio"`
	Role  *UserRole `json:"role"`
}

// UpdateSelfRequest accepts a role field so self-edit payloads that include
// one are not rejected, but the value is never applied.
type UpdateSelfRequest struct {
	Email *string `json:"email" validate:"omitempty,email,max=254"`
	Bio   *string `json:"bio"`
	Role  *string `json:"role"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=256"`
	Slug string `json:"slug" binding:"required"`
}

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,max=256"`
	Slug string `json:"slug" binding:"required"`
}

type CreateTitleRequest struct {
	Name        string   `json:"name" binding:"required,max=256"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Genre       []string `json:"genre"`
}

type UpdateTitleRequest struct {
	Name        *string   `json:"name"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Genre       *[]string `json:"genre"`
}

type TitleListParams struct {
	Category string `form:"category"`
	Genre    string `form:"genre"`
	Name     string `form:"name"`
	Year     int    `form:"year"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}

type CreateReviewRequest struct {
	Text  string `json:"text" binding:"required"`
	Score int    `json:"score"`
}

type UpdateReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

type ListParams struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
}

// ReviewResponse shows the author as a username, the way readers expect.
type ReviewResponse struct {
	ID      uint      `json:"id"`
	Author  string    `json:"author"`
	TitleID uint      `json:"title_id"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

type CommentResponse struct {
	ID       uint      `json:"id"`
	Author   string    `json:"author"`
	ReviewID uint      `json:"review_id"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
}

func NewReviewResponse(r *Review) ReviewResponse {
	return ReviewResponse{
		ID:      r.ID,
		Author:  r.AuthorName(),
		TitleID: r.TitleID,
		Text:    r.Text,
		Score:   r.Score,
		PubDate: r.PubDate,
	}
}

func NewCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:       c.ID,
		Author:   c.Author.Username,
		ReviewID: c.ReviewID,
		Text:     c.Text,
		PubDate:  c.PubDate,
	}
}

// UserResponse is the admin and self-profile projection of a user row.
type UserResponse struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Bio      string   `json:"bio"`
	Role     UserRole `json:"role"`
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		Role:     u.Role,
	}
}
