package dto

// CreateTagReq 标签 - 新增
type CreateTagReq struct {
	Name string `form:"name" json:"name" binding:"required"`
}

// TagDTO 标签
type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
