package handler

import (
	"Quill/internal/api/dto"
	"Quill/internal/api/view"
	"Quill/internal/model"
	"Quill/internal/pkg/response"
	"Quill/internal/service"
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type PostHandler struct {
	postSvc     service.PostService
	tagSvc      service.TagService
	categorySvc service.CategoryService
	renderer    view.Renderer
}

func NewPostHandler(postSvc service.PostService, tagSvc service.TagService, categorySvc service.CategoryService, renderer view.Renderer) *PostHandler {
	return &PostHandler{
		postSvc:     postSvc,
		tagSvc:      tagSvc,
		categorySvc: categorySvc,
		renderer:    renderer,
	}
}

// Page 构建帖子列表页，附带创建表单所需的全部标签与分类；req 不为空时先创建帖子
func (s *PostHandler) Page(ctx context.Context, req *dto.CreatePostReq) (*dto.PostsPage, error) {
	var createErr error
	if req != nil {
		_, createErr = s.postSvc.CreatePost(ctx, req.Title, req.Body, req.CategoryID, req.TagID)
	}

	var (
		posts      []*model.Post
		tags       []*model.Tag
		categories []*model.Category
	)
	// 三个列表互不依赖，并发读取
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		posts, err = s.postSvc.ListPosts(gCtx)
		return err
	})
	g.Go(func() (err error) {
		tags, err = s.tagSvc.ListTags(gCtx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.categorySvc.ListCategories(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := &dto.PostsPage{}
	var err error
	if page.Posts, err = dto.ToPostDTOs(posts); err != nil {
		return nil, err
	}
	if page.Tags, err = dto.ToTagDTOs(tags); err != nil {
		return nil, err
	}
	if page.Categories, err = dto.ToCategoryDTOs(categories); err != nil {
		return nil, err
	}

	if createErr != nil {
		page.Error = errorMessage(createErr)
	}
	return page, createErr
}

// List GET /posts
func (s *PostHandler) List(c *gin.Context) {
	s.render(c, nil, nil)
}

// Create POST /posts
func (s *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostReq
	if err := bindForm(c, &req); err != nil {
		s.render(c, nil, err)
		return
	}
	s.render(c, &req, nil)
}

func (s *PostHandler) render(c *gin.Context, req *dto.CreatePostReq, bindErr error) {
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
