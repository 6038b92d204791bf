package sql

import (
	"context"
	"fmt"
	"homecollection/internal/entity"

	"gorm.io/gorm"
)

// CreatePhotos records one photo per file path for the item. Either every row
// is inserted or none is.
func (r *GormRepository) CreatePhotos(ctx context.Context, itemID uint, filePaths []string) ([]entity.DbPhoto, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if itemID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	if len(filePaths) == 0 {
		return []entity.DbPhoto{}, nil
	}

	photos := make([]entity.DbPhoto, 0, len(filePaths))
	for _, p := range filePaths {
		photos = append(photos, entity.DbPhoto{FilePath: p, ItemID: itemID})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item entity.DbItem
		if err := tx.Select("id").First(&item, itemID).Error; err != nil {
			return err
		}
		return tx.Create(&photos).Error
	})
	if err != nil {
		return nil, err
	}
	return photos, nil
}
