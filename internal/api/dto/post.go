package dto

// CreatePostReq 帖子 - 新增，表单只提交一个 tag_id
type CreatePostReq struct {
	Title      string `form:"title" json:"title" binding:"required"`
	Body       string `form:"body" json:"body" binding:"required"`
	CategoryID uint64 `form:"category_id" json:"category_id" binding:"required"`
	TagID      uint64 `form:"tag_id" json:"tag_id" binding:"required"`
}

// PostDTO 帖子
type PostDTO struct {
	ID         uint64 `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	CategoryID uint64 `json:"category_id"`

	// Category
	CategoryName string `json:"category_name"`

	// Tags
	Tags []*TagDTO `json:"tags"`
}
