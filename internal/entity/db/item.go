package db

import "time"

// Item 是收藏中的一件实物。
type Item struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"column:name;type:varchar(255);index;not null" json:"name"`
	Description string `gorm:"column:description;type:text;not null;default:''" json:"description"`

	Tags   []Tag   `gorm:"many2many:item_tags;foreignKey:ID;joinForeignKey:ItemID;references:ID;joinReferences:TagID" json:"tags"`
	Photos []Photo `gorm:"foreignKey:ItemID" json:"photos"`
}

// TableName 指定表名
func (Item) TableName() string {
	return "items"
}
