package repository

import (
	"Quill/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PostRepo interface {
	// CreatePost 在同一事务内校验分类与标签存在，写入帖子及其 post_tag 关联；
	// 成功后 post.Category 与 post.Tags 被填充
	CreatePost(ctx context.Context, post *model.Post, tagID uint64) error
	ListPosts(ctx context.Context) ([]*model.Post, error)
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &postRepoImpl{
		db: db,
	}
}

func (s *postRepoImpl) CreatePost(ctx context.Context, post *model.Post, tagID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category model.Category
		if err := tx.First(&category, post.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotExist
			}
			return errors.Wrap(err, "load category")
		}

		var tag model.Tag
		if err := tx.First(&tag, tagID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTagNotExist
			}
			return errors.Wrap(err, "load tag")
		}

		if err := tx.Omit("Category").Create(post).Error; err != nil {
			return errors.Wrap(err, "insert post")
		}
		if err := tx.Create(&model.PostTag{PostID: post.ID, TagID: tag.ID}).Error; err != nil {
			return errors.Wrap(err, "insert post_tag")
		}

		post.Category = &category
		post.Tags = []*model.Tag{&tag}
		return nil
	})
}

// ListPosts 返回全部帖子，分类与标签通过显式查询填充
func (s *postRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	db := s.db.WithContext(ctx)

	var posts []*model.Post
	if err := db.Order("id").Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "list posts")
	}
	if len(posts) == 0 {
		return posts, nil
	}

	postIDs := make([]uint64, 0, len(posts))
	categorySet := make(map[uint64]struct{})
	categoryIDs := make([]uint64, 0)
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		if _, ok := categorySet[p.CategoryID]; !ok {
			categorySet[p.CategoryID] = struct{}{}
			categoryIDs = append(categoryIDs, p.CategoryID)
		}
	}

	categories, err := NewCategoryRepository(db).GetCategoriesByIds(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	categoryMap := make(map[uint64]*model.Category, len(categories))
	for _, c := range categories {
		categoryMap[c.ID] = c
	}

	tagMap, err := NewTagRepository(db).GetTagsByPostIds(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	for _, p := range posts {
		p.Category = categoryMap[p.CategoryID]
		p.Tags = tagMap[p.ID]
		if p.Tags == nil {
			p.Tags = []*model.Tag{}
		}
	}
	return posts, nil
}
