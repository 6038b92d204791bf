package sql

import (
	"context"
	"fmt"
	"homecollection/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func preloadItemRelations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id ASC") }).
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("photos.id ASC") })
}

// ListItems retrieves a page of items with their tags and photos.
func (r *GormRepository) ListItems(ctx context.Context, params entity.ListParams) ([]entity.DbItem, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	query := preloadItemRelations(r.db.WithContext(ctx).Model(&entity.DbItem{})).Order("items.id ASC")

	var items []entity.DbItem
	if err := r.paginate(query, params).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem retrieves a single item with its tags and photos.
func (r *GormRepository) GetItem(ctx context.Context, id uint) (*entity.DbItem, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var item entity.DbItem
	if err := preloadItemRelations(r.db.WithContext(ctx)).First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	return &item, nil
}

// ItemExists reports whether an item with the given id is stored.
func (r *GormRepository) ItemExists(ctx context.Context, id uint) (bool, error) {
	if r == nil || r.db == nil {
		return false, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.DbItem{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateItem inserts the item and links it to already persisted tags in one
// transaction. A tag that vanished in the meantime yields entity.ErrTagMissing.
func (r *GormRepository) CreateItem(ctx context.Context, item *entity.DbItem, tagIDs []uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if item == nil {
		return fmt.Errorf("item is nil")
	}

	ids := uniqueIDs(tagIDs)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadTags(tx, ids); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		links := make([]entity.DbItemTag, 0, len(ids))
		for _, tagID := range ids {
			links = append(links, entity.DbItemTag{ItemID: item.ID, TagID: tagID})
		}
		return tx.Create(&links).Error
	})
}

// UpdateItem updates scalar item fields and, when updates.TagIDs is set,
// replaces the tag set. Both happen in one transaction.
func (r *GormRepository) UpdateItem(ctx context.Context, id uint, updates entity.ItemUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item entity.DbItem
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}

		if fields := updates.ToMap(); len(fields) > 0 {
			if err := tx.Model(&item).Updates(fields).Error; err != nil {
				return err
			}
		}
		if updates.TagIDs == nil {
			return nil
		}
		return replaceItemTags(tx, &item, uniqueIDs(*updates.TagIDs))
	})
}

// loadTags fetches the tags with the given ids, failing with
// entity.ErrTagMissing unless every id exists.
func loadTags(tx *gorm.DB, ids []uint) ([]entity.DbTag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []entity.DbTag
	if err := tx.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, entity.ErrTagMissing
	}
	return tags, nil
}

func replaceItemTags(tx *gorm.DB, item *entity.DbItem, ids []uint) error {
	tags, err := loadTags(tx, ids)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		return tx.Model(item).Association("Tags").Clear()
	}
	return tx.Model(item).Association("Tags").Replace(tags)
}

// DeleteItem removes an item together with the photos it owns and its tag
// associations. Tags themselves are kept.
func (r *GormRepository) DeleteItem(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&entity.DbPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&entity.DbItemTag{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.DbItem{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
