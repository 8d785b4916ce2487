package model

import "fmt"

// Category 分类，一个分类下有多篇帖子
type Category struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"name"`
}

func (Category) TableName() string {
	return "category"
}

func (c Category) String() string {
	return fmt.Sprintf("<Category %s>", c.Name)
}
