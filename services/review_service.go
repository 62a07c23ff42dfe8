package services

import (
	"errors"

	"gorm.io/gorm"

	"reviewdb/models"
	"reviewdb/policy"
	"reviewdb/repositories"
)

type ReviewService interface {
	CreateReview(titleID uint, caller policy.Caller, req models.CreateReviewRequest) (*models.Review, error)
	GetReview(titleID, reviewID uint) (*models.Review, error)
	GetReviews(titleID uint, params models.ListParams) ([]models.Review, int64, error)
	UpdateReview(titleID, reviewID uint, caller policy.Caller, req models.UpdateReviewRequest) (*models.Review, error)
	DeleteReview(titleID, reviewID uint, caller policy.Caller) error
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	titleRepo  repositories.TitleRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, titleRepo repositories.TitleRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, titleRepo: titleRepo}
}

// CreateReview enforces one review per (author, title). The existence check
// here is advisory UX; the composite unique index is what actually prevents
// two concurrent creations from both getting through.
func (s *reviewService) CreateReview(titleID uint, caller policy.Caller, req models.CreateReviewRequest) (*models.Review, error) {
	if err := s.titleExists(titleID); err != nil {
		return nil, err
	}
	if err := models.ValidateScore(req.Score); err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.ExistsByAuthorAndTitle(caller.ID, titleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateReview
	}

	review := &models.Review{
		AuthorID: caller.ID,
		TitleID:  titleID,
		Text:     req.Text,
		Score:    req.Score,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateReview
		}
		return nil, err
	}

	return s.GetReview(titleID, review.ID)
}

func (s *reviewService) GetReview(titleID, reviewID uint) (*models.Review, error) {
	if err := s.titleExists(titleID); err != nil {
		return nil, err
	}
	review, err := s.reviewRepo.GetByID(titleID, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) GetReviews(titleID uint, params models.ListParams) ([]models.Review, int64, error) {
	if err := s.titleExists(titleID); err != nil {
		return nil, 0, err
	}
	return s.reviewRepo.GetListByTitle(titleID, params)
}

// UpdateReview allows author, moderator and admin. The duplicate rule is a
// create-only concern and is deliberately not re-checked here.
func (s *reviewService) UpdateReview(titleID, reviewID uint, caller policy.Caller, req models.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.GetReview(titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if !caller.CanMutateObject(review.AuthorID) {
		return nil, models.ErrPermissionDenied
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		if err := models.ValidateScore(*req.Score); err != nil {
			return nil, err
		}
		review.Score = *req.Score
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) DeleteReview(titleID, reviewID uint, caller policy.Caller) error {
	review, err := s.GetReview(titleID, reviewID)
	if err != nil {
		return err
	}
	if !caller.CanMutateObject(review.AuthorID) {
		return models.ErrPermissionDenied
	}
	return s.reviewRepo.Delete(review)
}

func (s *reviewService) titleExists(titleID uint) error {
	if _, err := s.titleRepo.GetByID(titleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return nil
}
