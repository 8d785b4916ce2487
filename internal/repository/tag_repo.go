package repository

import (
	"Quill/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TagRepo interface {
	CreateTag(ctx context.Context, tag *model.Tag) error
	ListTags(ctx context.Context) ([]*model.Tag, error)
	// GetTagsByPostIds 通过 post_tag 关联表一次查出多篇帖子的标签
	GetTagsByPostIds(ctx context.Context, postIDs []uint64) (map[uint64][]*model.Tag, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{
		db: db,
	}
}

func (s *tagRepoImpl) CreateTag(ctx context.Context, tag *model.Tag) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(tag).Error, "insert tag")
}

func (s *tagRepoImpl) ListTags(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag
	if err := s.db.WithContext(ctx).Order("id").Find(&tags).Error; err != nil {
		return nil, errors.Wrap(err, "list tags")
	}
	return tags, nil
}

type postTagRow struct {
	PostID uint64
	ID     uint64
	Name   string
}

func (s *tagRepoImpl) GetTagsByPostIds(ctx context.Context, postIDs []uint64) (map[uint64][]*model.Tag, error) {
	res := make(map[uint64][]*model.Tag, len(postIDs))
	if len(postIDs) == 0 {
		return res, nil
	}

	var rows []postTagRow
	err := s.db.WithContext(ctx).
		Table(model.PostTag{}.TableName()).
		Select("post_tag.post_id, tag.id, tag.name").
		Joins("JOIN tag ON tag.id = post_tag.tag_id").
		Where("post_tag.post_id IN ?", postIDs).
		Order("post_tag.post_id, tag.id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "get tags by post ids")
	}

	for _, r := range rows {
		res[r.PostID] = append(res[r.PostID], &model.Tag{ID: r.ID, Name: r.Name})
	}
	return res, nil
}
