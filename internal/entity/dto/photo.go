package dto

// Photo is the DTO representation of an uploaded photo.
type Photo struct {
	ID       uint   `json:"id"`
	FilePath string `json:"file_path"`
	ItemID   uint   `json:"item_id"`
}
