package service

import (
	"Quill/internal/model"
	"Quill/internal/repository"
	"context"
	log "log/slog"
	"strings"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

type nameInput struct {
	Name string `validate:"required,max=50"`
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	in := nameInput{Name: strings.TrimSpace(name)}
	if err := checkInput(&in); err != nil {
		return nil, err
	}

	category := &model.Category{Name: in.Name}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, storageError(ctx, "create category", err)
	}
	log.InfoContext(ctx, "category created", "id", category.ID, "name", category.Name)
	return category, nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, storageError(ctx, "list categories", err)
	}
	return categories, nil
}
