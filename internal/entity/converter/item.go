package converter

import (
	"homecollection/internal/entity/db"
	"homecollection/internal/entity/dto"
)

// ItemToDTO 将 db.Item 转换为 dto.Item，标签和照片总是输出为数组而不是 null。
func ItemToDTO(i *db.Item) dto.Item {
	if i == nil {
		return dto.Item{Tags: []dto.Tag{}, Photos: []dto.Photo{}}
	}
	return dto.Item{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Tags:        TagsToDTOs(i.Tags),
		Photos:      PhotosToDTOs(i.Photos),
	}
}

// ItemsToDTOs converts a slice of db.Item to dto.Item.
func ItemsToDTOs(items []db.Item) []dto.Item {
	dtos := make([]dto.Item, len(items))
	for i, item := range items {
		dtos[i] = ItemToDTO(&item)
	}
	return dtos
}
