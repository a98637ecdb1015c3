package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"collection-backend/internal/domains/searchhistory/model"
	"collection-backend/internal/domains/searchhistory/service"
	"collection-backend/internal/shared/middleware"
	"collection-backend/internal/shared/response"
)

// SearchHistoryHandler exposes the search-history endpoints.
type SearchHistoryHandler struct {
	service service.SearchHistoryService
}

func NewSearchHistoryHandler(service service.SearchHistoryService) *SearchHistoryHandler {
	return &SearchHistoryHandler{service: service}
}

// List handles GET /api/search_history; it returns the caller's rows.
func (h *SearchHistoryHandler) List(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Fail(c, 401, "unauthorized")
		return
	}

	result, err := h.service.ListByOwner(c.Request.Context(), callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "search history retrieved", result)
}

// Create handles POST /api/search_history/new.
func (h *SearchHistoryHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Fail(c, 401, "unauthorized")
		return
	}

	var req model.CreateSearchHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, 400, "invalid request body")
		return
	}

	if _, err := h.service.Create(c.Request.Context(), callerID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 201, "search history created", nil)
}

// Delete handles DELETE /api/search_history/delete/:id. The id is an
// owner id; every record for that owner is removed.
func (h *SearchHistoryHandler) Delete(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, 400, "invalid owner id")
		return
	}

	if _, err := h.service.DeleteByOwner(c.Request.Context(), ownerID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "search history deleted", nil)
}
