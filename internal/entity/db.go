package entity

// Re-export storage models from the db package so repositories can refer to
// them without clashing with their *gorm.DB fields.

import (
	"homecollection/internal/entity/db"
)

type DbItem = db.Item
type DbTag = db.Tag
type DbPhoto = db.Photo
type DbItemTag = db.ItemTag

const DefaultTagColor = db.DefaultTagColor
