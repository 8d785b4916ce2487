package model

// PostTag 帖子与标签的关联表，(post_id, tag_id) 为联合主键
type PostTag struct {
	PostID uint64 `gorm:"primaryKey;autoIncrement:false" json:"postId"`
	TagID  uint64 `gorm:"primaryKey;autoIncrement:false;index:idx_post_tag_tag_id" json:"tagId"`

	Post *Post `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Tag  *Tag  `gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (PostTag) TableName() string {
	return "post_tag"
}
