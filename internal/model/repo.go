package model

import (
	"context"
	"homecollection/internal/entity"
)

// Repository 定义数据库操作接口
//
// 查找不到记录时返回 gorm.ErrRecordNotFound，违反唯一约束时返回 gorm.ErrDuplicatedKey，
// 关联的标签不存在时返回 entity.ErrTagMissing。
type Repository interface {
	// 标签
	ListTags(ctx context.Context, params entity.ListParams) ([]entity.DbTag, error)
	GetTag(ctx context.Context, id uint) (*entity.DbTag, error)
	FindOrCreateTag(ctx context.Context, name, color string) (*entity.DbTag, bool, error)
	UpdateTag(ctx context.Context, id uint, updates entity.TagUpdates) error
	DeleteTag(ctx context.Context, id uint) error

	// 物品
	ListItems(ctx context.Context, params entity.ListParams) ([]entity.DbItem, error)
	GetItem(ctx context.Context, id uint) (*entity.DbItem, error)
	ItemExists(ctx context.Context, id uint) (bool, error)
	CreateItem(ctx context.Context, item *entity.DbItem, tagIDs []uint) error
	UpdateItem(ctx context.Context, id uint, updates entity.ItemUpdates) error
	DeleteItem(ctx context.Context, id uint) error

	// 照片
	CreatePhotos(ctx context.Context, itemID uint, filePaths []string) ([]entity.DbPhoto, error)
}
