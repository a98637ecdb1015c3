package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"collection-backend/internal/domains/user/model"
	"collection-backend/internal/domains/user/service"
	"collection-backend/internal/shared/response"
)

// UserHandler exposes the user CRUD endpoints and the login exchange.
type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Login handles POST /api/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, 400, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.Fail(c, 400, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.JsCode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "login successful", result)
}

// List handles GET /api/user.
func (h *UserHandler) List(c *gin.Context) {
	var query model.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Fail(c, 400, "invalid pagination parameters")
		return
	}

	page, perPage, err := query.Values()
	if err != nil {
		response.Fail(c, 400, err.Error())
		return
	}

	result, err := h.service.List(c.Request.Context(), page, perPage)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "users retrieved", result)
}

// GetByID handles GET /api/user/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, 400, "invalid user id")
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "user retrieved", user)
}

// Create handles POST /api/user/new.
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, 400, "invalid request body")
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 201, "user created", nil)
}

// Update handles POST /api/user/update/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, 400, "invalid user id")
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, 400, "invalid request body")
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "user updated", nil)
}

// Delete handles DELETE /api/user/delete/:id. Deleting an absent id still
// reports success.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, 400, "invalid user id")
		return
	}

	if _, err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "user deleted", nil)
}
