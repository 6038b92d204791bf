package sql

import (
	"context"
	"errors"
	"fmt"
	"homecollection/internal/entity"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListTags returns tags in storage order.
func (r *GormRepository) ListTags(ctx context.Context, params entity.ListParams) ([]entity.DbTag, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	var tags []entity.DbTag
	query := r.paginate(r.db.WithContext(ctx).Model(&entity.DbTag{}).Order("id ASC"), params)
	if err := query.Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTag fetches a tag by id.
func (r *GormRepository) GetTag(ctx context.Context, id uint) (*entity.DbTag, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var tag entity.DbTag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindOrCreateTag inserts a tag unless one with the same name exists, in which
// case the existing row is returned untouched. The boolean reports whether a
// new row was created.
func (r *GormRepository) FindOrCreateTag(ctx context.Context, name, color string) (*entity.DbTag, bool, error) {
	if r == nil || r.db == nil {
		return nil, false, fmt.Errorf("repository not initialised")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, fmt.Errorf("tag name is empty")
	}
	color = strings.TrimSpace(color)
	if color == "" {
		color = entity.DefaultTagColor
	}

	tag := &entity.DbTag{Name: name, Color: color}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(tag)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return nil, false, result.Error
	}
	if result.Error == nil && result.RowsAffected > 0 && tag.ID != 0 {
		return tag, true, nil
	}

	// 名称已存在（包括并发插入导致的冲突），返回已有记录
	existing, err := r.findTagByName(ctx, r.db, name)
	if err != nil {
		return nil, false, fmt.Errorf("load existing tag %q: %w", name, err)
	}
	return existing, false, nil
}

func (r *GormRepository) findTagByName(ctx context.Context, db *gorm.DB, name string) (*entity.DbTag, error) {
	var tag entity.DbTag
	if err := db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag updates tag fields. Renaming onto another tag's name yields
// gorm.ErrDuplicatedKey.
func (r *GormRepository) UpdateTag(ctx context.Context, id uint, updates entity.TagUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tag entity.DbTag
		if err := tx.First(&tag, id).Error; err != nil {
			return err
		}
		if updates.IsEmpty() {
			return nil
		}

		if updates.Name != nil && *updates.Name != tag.Name {
			var clashes int64
			if err := tx.Model(&entity.DbTag{}).
				Where("name = ? AND id <> ?", *updates.Name, id).
				Count(&clashes).Error; err != nil {
				return err
			}
			if clashes > 0 {
				return gorm.ErrDuplicatedKey
			}
		}

		return tx.Model(&tag).Updates(updates.ToMap()).Error
	})
}

// DeleteTag removes a tag and its item associations. Items are left intact.
func (r *GormRepository) DeleteTag(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&entity.DbItemTag{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.DbTag{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
