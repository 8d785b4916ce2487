package model

import "fmt"

type Tag struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"name"`
}

func (Tag) TableName() string {
	return "tag"
}

func (t Tag) String() string {
	return fmt.Sprintf("<Tag %s>", t.Name)
}
