package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewdb/helper"
	"reviewdb/models"
	"reviewdb/services"
)

type TitleHandler struct {
	titleService services.TitleService
	Helper       *helper.HTTPHelper
}

func NewTitleHandler(titleService services.TitleService, h *helper.HTTPHelper) *TitleHandler {
	return &TitleHandler{titleService: titleService, Helper: h}
}

func (h *TitleHandler) CreateTitle(c *gin.Context) {
	var req models.CreateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	title, err := h.titleService.CreateTitle(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, title)
}

// GetTitles lists titles with their computed ratings, filterable by
// category, genre, name and year.
func (h *TitleHandler) GetTitles(c *gin.Context) {
	var params models.TitleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	titles, total, err := h.titleService.GetTitles(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":    titles,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *TitleHandler) GetTitle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid title id")
		return
	}

	title, err := h.titleService.GetTitle(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, title)
}

func (h *TitleHandler) UpdateTitle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid title id")
		return
	}

	var req models.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	title, err := h.titleService.UpdateTitle(id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, title)
}

func (h *TitleHandler) DeleteTitle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid title id")
		return
	}

	if err := h.titleService.DeleteTitle(id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
