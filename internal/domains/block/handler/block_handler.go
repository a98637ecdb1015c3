package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"collection-backend/internal/domains/block/model"
	"collection-backend/internal/domains/block/service"
	"collection-backend/internal/shared/middleware"
	"collection-backend/internal/shared/response"
)

// BlockHandler exposes the block CRUD endpoints.
type BlockHandler struct {
	service service.BlockService
}

func NewBlockHandler(service service.BlockService) *BlockHandler {
	return &BlockHandler{service: service}
}

// List handles GET /api/block.
func (h *BlockHandler) List(c *gin.Context) {
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

	response.Success(c, 200, "blocks retrieved", result)
}

// GetByID handles GET /api/block/:id. The record is wrapped as
// {"block": ...} in the payload.
func (h *BlockHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, 400, "invalid block id")
		return
	}

	block, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "block retrieved", gin.H{"block": block})
}

// Create handles POST /api/block/new.
func (h *BlockHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Fail(c, 401, "unauthorized")
		return
	}

	var req model.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, 400, "invalid request body")
		return
	}

	if _, err := h.service.Create(c.Request.Context(), callerID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 201, "block created", nil)
}

// Update handles POST /api/block/update/:id.
func (h *BlockHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, 400, "invalid block id")
		return
	}

	var req model.UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, 400, "invalid request body")
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "block updated", nil)
}

// Delete handles DELETE /api/block/delete/:id.
func (h *BlockHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, 400, "invalid block id")
		return
	}

	if _, err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "block deleted", nil)
}
