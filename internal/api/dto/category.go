package dto

// CreateCategoryReq 分类 - 新增
type CreateCategoryReq struct {
	Name string `form:"name" json:"name" binding:"required"`
}

// CategoryDTO 分类
type CategoryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
