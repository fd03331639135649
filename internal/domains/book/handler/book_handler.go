package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"bszip-backend/internal/domains/book/model"
	"bszip-backend/internal/domains/book/service"
	"bszip-backend/internal/shared/response"
)

const messageSearchSuccess = "검색 성공"

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// SearchByTitle - GET /api/booksnap/book-search?query=&page=
func (h *Handler) SearchByTitle(c *gin.Context) {
	h.search(c, h.service.SearchByTitle)
}

// SearchByAuthor - GET /api/booksnap/book-search-by-author?query=&page=
func (h *Handler) SearchByAuthor(c *gin.Context) {
	h.search(c, h.service.SearchByAuthor)
}

func (h *Handler) search(c *gin.Context, run func(context.Context, model.SearchRequest) (*model.BookSearchPage, error)) {
	var req model.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, model.NewInvalidQueryError(err))
		return
	}

	page, err := run(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, messageSearchSuccess, page)
}
