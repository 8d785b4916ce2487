package dto

import (
	"Quill/internal/model"

	"github.com/jinzhu/copier"
)

func ToCategoryDTOs(categories []*model.Category) ([]*CategoryDTO, error) {
	out := make([]*CategoryDTO, 0, len(categories))
	if len(categories) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &categories); err != nil {
		return nil, err
	}
	return out, nil
}

func ToTagDTOs(tags []*model.Tag) ([]*TagDTO, error) {
	out := make([]*TagDTO, 0, len(tags))
	if len(tags) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &tags); err != nil {
		return nil, err
	}
	return out, nil
}

// ToPostDTO 将 Model 转换为视图 DTO
func ToPostDTO(post *model.Post) (*PostDTO, error) {
	out := &PostDTO{}
	if err := copier.CopyWithOption(out, post, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if post.Category != nil {
		out.CategoryName = post.Category.Name
	}
	tags, err := ToTagDTOs(post.Tags)
	if err != nil {
		return nil, err
	}
	out.Tags = tags
	return out, nil
}

func ToPostDTOs(posts []*model.Post) ([]*PostDTO, error) {
	out := make([]*PostDTO, 0, len(posts))
	for _, p := range posts {
		d, err := ToPostDTO(p)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
