package converter

import (
	"homecollection/internal/entity/db"
	"homecollection/internal/entity/dto"
)

// PhotoToDTO converts db.Photo to dto.Photo.
func PhotoToDTO(p *db.Photo) dto.Photo {
	if p == nil {
		return dto.Photo{}
	}
	return dto.Photo{
		ID:       p.ID,
		FilePath: p.FilePath,
		ItemID:   p.ItemID,
	}
}

// PhotosToDTOs converts a slice of db.Photo to dto.Photo.
func PhotosToDTOs(photos []db.Photo) []dto.Photo {
	dtos := make([]dto.Photo, len(photos))
	for i, p := range photos {
		dtos[i] = PhotoToDTO(&p)
	}
	return dtos
}
