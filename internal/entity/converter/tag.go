package converter

import (
	"homecollection/internal/entity/db"
	"homecollection/internal/entity/dto"
)

// TagToDTO converts db.Tag to dto.Tag.
func TagToDTO(t *db.Tag) dto.Tag {
	if t == nil {
		return dto.Tag{}
	}
	return dto.Tag{
		ID:    t.ID,
		Name:  t.Name,
		Color: t.Color,
	}
}

// TagsToDTOs converts a slice of db.Tag to dto.Tag.
func TagsToDTOs(tags []db.Tag) []dto.Tag {
	dtos := make([]dto.Tag, len(tags))
	for i, t := range tags {
		dtos[i] = TagToDTO(&t)
	}
	return dtos
}
