package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewdb/helper"
	"reviewdb/middleware"
	"reviewdb/models"
	"reviewdb/services"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

// nestedIDs pulls the title and review ids shared by every comment route.
func (h *CommentHandler) nestedIDs(c *gin.Context) (titleID, reviewID uint, ok bool) {
	titleID, ok = idParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid title id")
		return 0, 0, false
	}
	reviewID, ok = idParam(c, "review_id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid review id")
		return 0, 0, false
	}
	return titleID, reviewID, true
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	caller, ok := middleware.CurrentCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	titleID, reviewID, ok := h.nestedIDs(c)
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.CreateComment(titleID, reviewID, caller, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewCommentResponse(comment))
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	titleID, reviewID, ok := h.nestedIDs(c)
	if !ok {
		return
	}

	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	comments, total, err := h.commentService.GetComments(titleID, reviewID, params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	results := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		results = append(results, models.NewCommentResponse(&comments[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"results":    results,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	titleID, reviewID, ok := h.nestedIDs(c)
	if !ok {
		return
	}
	commentID, ok := idParam(c, "comment_id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid comment id")
		return
	}

	comment, err := h.commentService.GetComment(titleID, reviewID, commentID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewCommentResponse(comment))
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	caller, ok := middleware.CurrentCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	titleID, reviewID, ok := h.nestedIDs(c)
	if !ok {
		return
	}
	commentID, ok := idParam(c, "comment_id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid comment id")
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.UpdateComment(titleID, reviewID, commentID, caller, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewCommentResponse(comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	caller, ok := middleware.CurrentCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	titleID, reviewID, ok := h.nestedIDs(c)
	if !ok {
		return
	}
	commentID, ok := idParam(c, "comment_id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid comment id")
		return
	}

	if err := h.commentService.DeleteComment(titleID, reviewID, commentID, caller); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
