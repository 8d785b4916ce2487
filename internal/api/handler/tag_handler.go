package handler

import (
	"Quill/internal/api/dto"
	"Quill/internal/api/view"
	"Quill/internal/pkg/response"
	"Quill/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagSvc   service.TagService
	renderer view.Renderer
}

func NewTagHandler(tagSvc service.TagService, renderer view.Renderer) *TagHandler {
	return &TagHandler{
		tagSvc:   tagSvc,
		renderer: renderer,
	}
}

// Page 构建标签列表页；req 不为空时先创建标签。
// 创建失败时仍返回最新列表与错误，列表加载失败时 page 为 nil
func (s *TagHandler) Page(ctx context.Context, req *dto.CreateTagReq) (*dto.TagsPage, error) {
	var createErr error
	if req != nil {
		_, createErr = s.tagSvc.CreateTag(ctx, req.Name)
	}

	tags, err := s.tagSvc.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	out, err := dto.ToTagDTOs(tags)
	if err != nil {
		return nil, err
	}

	page := &dto.TagsPage{Tags: out}
	if createErr != nil {
		page.Error = errorMessage(createErr)
	}
	return page, createErr
}

// List GET /tags
func (s *TagHandler) List(c *gin.Context) {
	s.render(c, nil, nil)
}

// Create POST /tags
func (s *TagHandler) Create(c *gin.Context) {
	var req dto.CreateTagReq
	if err := bindForm(c, &req); err != nil {
		s.render(c, nil, err)
		return
	}
	s.render(c, &req, nil)
}

func (s *TagHandler) render(c *gin.Context, req *dto.CreateTagReq, bindErr error) {
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
