package service

import (
	"Quill/internal/model"
	"Quill/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
)

type PostService interface {
	// CreatePost 创建帖子并关联一个已存在的标签
	CreatePost(ctx context.Context, title, body string, categoryID, tagID uint64) (*model.Post, error)
	ListPosts(ctx context.Context) ([]*model.Post, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
	}
}

type postInput struct {
	Title      string `validate:"required,max=80"`
	Body       string `validate:"required"`
	CategoryID uint64 `validate:"required"`
	TagID      uint64 `validate:"required"`
}

// 关联 ID 缺失时按“引用不存在”处理
var idErrors = map[string]error{
	"categoryid": ErrCategoryNotFound,
	"tagid":      ErrTagNotFound,
}

func (s *postServiceImpl) CreatePost(ctx context.Context, title, body string, categoryID, tagID uint64) (*model.Post, error) {
	in := postInput{
		Title:      strings.TrimSpace(title),
		Body:       body,
		CategoryID: categoryID,
		TagID:      tagID,
	}
	if strings.TrimSpace(in.Body) == "" {
		in.Body = ""
	}
	if err := checkInput(&in); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			if mapped, ok := idErrors[ve.Field]; ok {
				return nil, mapped
			}
		}
		return nil, err
	}

	post := &model.Post{
		Title:      in.Title,
		Body:       in.Body,
		CategoryID: in.CategoryID,
	}
	err := s.postRepo.CreatePost(ctx, post, in.TagID)
	switch {
	case errors.Is(err, repository.ErrCategoryNotExist):
		return nil, ErrCategoryNotFound
	case errors.Is(err, repository.ErrTagNotExist):
		return nil, ErrTagNotFound
	case err != nil:
		return nil, storageError(ctx, "create post", err)
	}

	log.InfoContext(ctx, "post created", "id", post.ID, "category_id", post.CategoryID, "tag_id", in.TagID)
	return post, nil
}

func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, storageError(ctx, "list posts", err)
	}
	return posts, nil
}
