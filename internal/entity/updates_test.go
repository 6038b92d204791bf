package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagUpdatesToMap(t *testing.T) {
	name := "kitchen"
	color := "#ff0000"

	assert.True(t, TagUpdates{}.IsEmpty())
	assert.Equal(t, map[string]interface{}{"name": "kitchen"}, TagUpdates{Name: &name}.ToMap())
	assert.Equal(t, map[string]interface{}{"name": "kitchen", "color": "#ff0000"}, TagUpdates{Name: &name, Color: &color}.ToMap())
}

func TestItemUpdatesToMap(t *testing.T) {
	empty := ""

	assert.True(t, ItemUpdates{}.IsEmpty())
	assert.Equal(t, map[string]interface{}{"description": ""}, ItemUpdates{Description: &empty}.ToMap())

	cleared := []uint{}
	tagsOnly := ItemUpdates{TagIDs: &cleared}
	assert.False(t, tagsOnly.IsEmpty())
	assert.Empty(t, tagsOnly.ToMap())
}

func TestListParamsNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       ListParams
		maxLimit int
		want     ListParams
	}{
		{name: "defaults", in: ListParams{}, want: ListParams{Skip: 0, Limit: DefaultPageLimit}},
		{name: "negative skip", in: ListParams{Skip: -3, Limit: 10}, want: ListParams{Skip: 0, Limit: 10}},
		{name: "negative limit", in: ListParams{Skip: 5, Limit: -1}, want: ListParams{Skip: 5, Limit: DefaultPageLimit}},
		{name: "limit capped", in: ListParams{Limit: 100000}, want: ListParams{Limit: MaxPageLimit}},
		{name: "custom cap", in: ListParams{Limit: 80}, maxLimit: 50, want: ListParams{Limit: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize(tt.maxLimit))
		})
	}
}
