package service

import (
	"Quill/internal/model"
	"Quill/internal/repository"
	"context"
	log "log/slog"
	"strings"
)

type TagService interface {
	CreateTag(ctx context.Context, name string) (*model.Tag, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
}

type tagServiceImpl struct {
	tagRepo repository.TagRepo
}

func NewTagService(tagRepo repository.TagRepo) TagService {
	return &tagServiceImpl{
		tagRepo: tagRepo,
	}
}

func (s *tagServiceImpl) CreateTag(ctx context.Context, name string) (*model.Tag, error) {
	in := nameInput{Name: strings.TrimSpace(name)}
	if err := checkInput(&in); err != nil {
		return nil, err
	}

	tag := &model.Tag{Name: in.Name}
	if err := s.tagRepo.CreateTag(ctx, tag); err != nil {
		return nil, storageError(ctx, "create tag", err)
	}
	log.InfoContext(ctx, "tag created", "id", tag.ID, "name", tag.Name)
	return tag, nil
}

func (s *tagServiceImpl) ListTags(ctx context.Context) ([]*model.Tag, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, storageError(ctx, "list tags", err)
	}
	return tags, nil
}
