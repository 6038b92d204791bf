package dto

// Item is the DTO representation of an item with its tags and photos.
type Item struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Tags        []Tag   `json:"tags"`
	Photos      []Photo `json:"photos"`
}

// ItemCreateRequest is the payload of POST /api/items.
// Tags carries tag names; unknown names are created on the fly.
type ItemCreateRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// ItemUpdateRequest is the payload of PUT /api/items/:id.
// A non-nil Tags replaces the whole tag set.
type ItemUpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
}

// OKResponse acknowledges a delete.
type OKResponse struct {
	OK bool `json:"ok"`
}
