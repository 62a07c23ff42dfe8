package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewdb/helper"
	"reviewdb/middleware"
	"reviewdb/models"
	"reviewdb/services"
)

type ReviewHandler struct {
	reviewService services.ReviewService
	Helper        *helper.HTTPHelper
}

func NewReviewHandler(reviewService services.ReviewService, h *helper.HTTPHelper) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, Helper: h}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	caller, ok := middleware.CurrentCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	titleID, ok := idParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid title id")
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(titleID, caller, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewReviewResponse(review))
}

func (h *ReviewHandler) GetReviews(c *gin.Context) {
	titleID, ok := idParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid title id")
		return
	}

	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	reviews, total, err := h.reviewService.GetReviews(titleID, params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	results := make([]models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		results = append(results, models.NewReviewResponse(&reviews[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"results":    results,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	titleID, ok := idParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid title id")
		return
	}
	reviewID, ok := idParam(c, "review_id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid review id")
		return
	}

	review, err := h.reviewService.GetReview(titleID, reviewID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewReviewResponse(review))
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	caller, ok := middleware.CurrentCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	titleID, ok := idParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid title id")
		return
	}
	reviewID, ok := idParam(c, "review_id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid review id")
		return
	}

	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.UpdateReview(titleID, reviewID, caller, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewReviewResponse(review))
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	caller, ok := middleware.CurrentCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	titleID, ok := idParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid title id")
		return
	}
	reviewID, ok := idParam(c, "review_id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid review id")
		return
	}

	if err := h.reviewService.DeleteReview(titleID, reviewID, caller); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
