package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewdb/helper"
	"reviewdb/models"
	"reviewdb/services"
)

type GenreHandler struct {
	genreService services.GenreService
	Helper       *helper.HTTPHelper
}

func NewGenreHandler(genreService services.GenreService, h *helper.HTTPHelper) *GenreHandler {
	return &GenreHandler{genreService: genreService, Helper: h}
}

func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req models.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	genre, err := h.genreService.CreateGenre(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, genre)
}

func (h *GenreHandler) GetGenres(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	genres, total, err := h.genreService.GetGenres(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":    genres,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	if err := h.genreService.DeleteGenre(c.Param("slug")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
