package entity

// TagUpdates 标签更新字段
type TagUpdates struct {
	Name  *string
	Color *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u TagUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Color != nil {
		updates["color"] = *u.Color
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u TagUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// ItemUpdates 物品更新字段。TagIDs 非 nil 时在同一事务中整体替换标签集合，空切片表示清空。
type ItemUpdates struct {
	Name        *string
	Description *string
	TagIDs      *[]uint
}

// ToMap 转换为 GORM 更新 map（内部使用），不包含标签
func (u ItemUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u ItemUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0 && u.TagIDs == nil
}
