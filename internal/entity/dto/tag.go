package dto

// Tag is the DTO representation of a tag.
type Tag struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagCreateRequest is the payload of POST /api/tags.
type TagCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// TagUpdateRequest is the payload of PUT /api/tags/:id. Nil fields are left unchanged.
type TagUpdateRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
