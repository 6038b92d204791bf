package db

import "time"

// DefaultTagColor 是未指定颜色时标签使用的显示颜色。
const DefaultTagColor = "#4f46e5"

// Tag 表示可复用的物品标签，名称全局唯一。
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"size:128;uniqueIndex;not null" json:"name"`
	Color string `gorm:"size:32;not null;default:#4f46e5" json:"color"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

// ItemTag 物品与标签的关联表。
type ItemTag struct {
	ItemID uint `gorm:"primaryKey" json:"item_id"`
	TagID  uint `gorm:"primaryKey;index" json:"tag_id"`
}

// TableName 指定表名
func (ItemTag) TableName() string {
	return "item_tags"
}
