package handler

import (
	"Quill/internal/api/dto"
	"Quill/internal/api/view"
	"Quill/internal/pkg/response"
	"Quill/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categorySvc service.CategoryService
	renderer    view.Renderer
}

func NewCategoryHandler(categorySvc service.CategoryService, renderer view.Renderer) *CategoryHandler {
	return &CategoryHandler{
		categorySvc: categorySvc,
		renderer:    renderer,
	}
}

// Page 构建分类列表页；req 不为空时先创建分类。
// 创建失败时仍返回最新列表与错误，列表加载失败时 page 为 nil
func (s *CategoryHandler) Page(ctx context.Context, req *dto.CreateCategoryReq) (*dto.CategoriesPage, error) {
	var createErr error
	if req != nil {
		_, createErr = s.categorySvc.CreateCategory(ctx, req.Name)
	}

	categories, err := s.categorySvc.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out, err := dto.ToCategoryDTOs(categories)
	if err != nil {
		return nil, err
	}

	page := &dto.CategoriesPage{Categories: out}
	if createErr != nil {
		page.Error = errorMessage(createErr)
	}
	return page, createErr
}

// List GET /categories
func (s *CategoryHandler) List(c *gin.Context) {
	s.render(c, nil, nil)
}

// Create POST /categories
func (s *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryReq
	if err := bindForm(c, &req); err != nil {
		s.render(c, nil, err)
		return
	}
	s.render(c, &req, nil)
}

func (s *CategoryHandler) render(c *gin.Context, req *dto.CreateCategoryReq, bindErr error) {
	page, err := s.Page(c.Request.Context(), req)
	if page == nil {
		response.Error(c, err)
		return
	}
	if bindErr != nil {
		err = bindErr
		page.Error = errorMessage(err)
	}
	serve(c, s.renderer, page, err)
}
