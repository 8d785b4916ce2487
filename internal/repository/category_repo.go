package repository

import (
	"Quill/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CategoryRepo interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategoriesByIds(ctx context.Context, ids []uint64) ([]*model.Category, error)
}

type categoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepo {
	return &categoryRepoImpl{
		db: db,
	}
}

func (s *categoryRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(category).Error, "insert category")
}

func (s *categoryRepoImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

func (s *categoryRepoImpl) GetCategoriesByIds(ctx context.Context, ids []uint64) ([]*model.Category, error) {
	var categories []*model.Category
	if len(ids) == 0 {
		return categories, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "get categories by ids")
	}
	return categories, nil
}
