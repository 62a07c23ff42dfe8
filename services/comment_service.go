package services

import (
	"errors"

	"gorm.io/gorm"

	"reviewdb/models"
	"reviewdb/policy"
	"reviewdb/repositories"
)

type CommentService interface {
	CreateComment(titleID, reviewID uint, caller policy.Caller, req models.CreateCommentRequest) (*models.Comment, error)
	GetComment(titleID, reviewID, commentID uint) (*models.Comment, error)
	GetComments(titleID, reviewID uint, params models.ListParams) ([]models.Comment, int64, error)
	UpdateComment(titleID, reviewID, commentID uint, caller policy.Caller, req models.UpdateCommentRequest) (*models.Comment, error)
	DeleteComment(titleID, reviewID, commentID uint, caller policy.Caller) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	reviewRepo  repositories.ReviewRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, reviewRepo repositories.ReviewRepository) CommentService {
	return &commentService{commentRepo: commentRepo, reviewRepo: reviewRepo}
}

func (s *commentService) CreateComment(titleID, reviewID uint, caller policy.Caller, req models.CreateCommentRequest) (*models.Comment, error) {
	if err := s.reviewExists(titleID, reviewID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AuthorID: caller.ID,
		ReviewID: reviewID,
		Text:     req.Text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return s.GetComment(titleID, reviewID, comment.ID)
}

func (s *commentService) GetComment(titleID, reviewID, commentID uint) (*models.Comment, error) {
	if err := s.reviewExists(titleID, reviewID); err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.GetByID(reviewID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) GetComments(titleID, reviewID uint, params models.ListParams) ([]models.Comment, int64, error) {
	if err := s.reviewExists(titleID, reviewID); err != nil {
		return nil, 0, err
	}
	return s.commentRepo.GetListByReview(reviewID, params)
}

func (s *commentService) UpdateComment(titleID, reviewID, commentID uint, caller policy.Caller, req models.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.GetComment(titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if !caller.CanMutateObject(comment.AuthorID) {
		return nil, models.ErrPermissionDenied
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) DeleteComment(titleID, reviewID, commentID uint, caller policy.Caller) error {
	comment, err := s.GetComment(titleID, reviewID, commentID)
	if err != nil {
		return err
	}
	if !caller.CanMutateObject(comment.AuthorID) {
		return models.ErrPermissionDenied
	}
	return s.commentRepo.Delete(comment)
}

// reviewExists verifies the nested route: the review must belong to the
// title named in the path.
func (s *commentService) reviewExists(titleID, reviewID uint) error {
	if _, err := s.reviewRepo.GetByID(titleID, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return nil
}
