package db

import "time"

// Photo 记录一张已上传的照片。FilePath 指向存储中的文件，不包含文件内容。
type Photo struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	FilePath string `gorm:"column:file_path;type:text;not null" json:"file_path"`
	ItemID   uint   `gorm:"column:item_id;index;not null" json:"item_id"`
}

// TableName 指定表名
func (Photo) TableName() string {
	return "photos"
}
