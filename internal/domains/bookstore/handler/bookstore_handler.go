package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bszip-backend/internal/domains/bookstore/model"
	"bszip-backend/internal/domains/bookstore/service"
	"bszip-backend/internal/shared/apperror"
	"bszip-backend/internal/shared/requester"
	"bszip-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Search - GET /api/bookstores/search?keyword=&lat=&lng=
// An empty result is a 404, unlike ListByCategory.
func (h *Handler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.InvalidRequest(err))
		return
	}
	req.Normalize()

	stores, err := h.service.Search(c.Request.Context(), req, requester.FromGin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(stores) == 0 {
		response.Error(c, model.NewNoSearchResultError(req.Keyword))
		return
	}

	response.OK(c, req.Keyword+" - 서점 검색 성공", stores)
}

// ListByCategory - GET /api/bookstores?category=&lat=&lng=
func (h *Handler) ListByCategory(c *gin.Context) {
	var req model.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.InvalidRequest(err))
		return
	}

	stores, err := h.service.ListByCategory(c.Request.Context(), req, requester.FromGin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "카테고리별 서점 조회 성공", stores)
}

// ToggleLike - POST /api/bookstores/:id/toggle-like
func (h *Handler) ToggleLike(c *gin.Context) {
	who := requester.FromGin(c)
	memberID, ok := who.ID()
	if !ok {
		response.Unauthorized(c)
		return
	}

	rawID := strings.TrimSpace(c.Param("id"))
	storeID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || storeID <= 0 {
		response.Error(c, model.NewInvalidIDError(rawID))
		return
	}

	result, err := h.service.ToggleLike(c.Request.Context(), storeID, who)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("서점 찜하기/찜 취소 성공 - 사용자: %d 서점: %d", memberID, storeID), result)
}

// ListLiked - GET /api/bookstores/liked?category=&lat=&lng=
func (h *Handler) ListLiked(c *gin.Context) {
	who := requester.FromGin(c)
	if _, ok := who.ID(); !ok {
		response.Unauthorized(c)
		return
	}

	var req model.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.InvalidRequest(err))
		return
	}

	liked, err := h.service.ListLiked(c.Request.Context(), req, who)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "찜한 서점 목록 조회 성공", liked)
}
