package model

import "fmt"

type Post struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	Title      string `gorm:"type:varchar(80);not null" json:"title"`
	Body       string `gorm:"type:text;not null" json:"body"`
	CategoryID uint64 `gorm:"not null;index:idx_post_category_id" json:"category_id"`

	// 关联关系，仅用于迁移时生成外键；查询时由 repository 显式填充
	Category *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"category,omitempty"`
	Tags     []*Tag    `gorm:"-" json:"tags,omitempty"`
}

func (Post) TableName() string {
	return "post"
}

func (p Post) String() string {
	return fmt.Sprintf("<Post %s>", p.Title)
}
