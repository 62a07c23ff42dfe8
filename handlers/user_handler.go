package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewdb/helper"
	"reviewdb/middleware"
	"reviewdb/models"
	"reviewdb/services"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	user, err := h.userService.CreateUser(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewUserResponse(user))
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	users, total, err := h.userService.GetUsers(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	results := make([]models.UserResponse, 0, len(users))
	for i := range users {
		results = append(results, models.NewUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"results":    results,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUserByUsername(c.Param("username"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Param("username"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Param("username")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMe serves the caller's own profile.
func (h *UserHandler) GetMe(c *gin.Context) {
	caller, ok := middleware.CurrentCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	user, err := h.userService.GetProfile(caller.ID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

// UpdateMe edits the caller's own profile. A role field in the payload is
// accepted and ignored; self-edits can never change access level.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	caller, ok := middleware.CurrentCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req models.UpdateSelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	user, err := h.userService.UpdateProfile(caller.ID, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}
