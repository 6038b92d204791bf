package sql

import (
	"context"
	"errors"
	"testing"

	"homecollection/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreatePhotos(t *testing.T) {
	t.Run("AssignsDistinctIDs", func(t *testing.T) {
		repo, _ := setupTestRepository(t)
		ctx := context.Background()
		item := mustItem(t, repo, "Clock")

		photos, err := repo.CreatePhotos(ctx, item.ID, []string{"/uploads/a.png", "/uploads/b.jpg"})
		require.NoError(t, err)
		require.Len(t, photos, 2)
		assert.NotZero(t, photos[0].ID)
		assert.NotZero(t, photos[1].ID)
		assert.NotEqual(t, photos[0].ID, photos[1].ID)
		assert.Equal(t, item.ID, photos[0].ItemID)
		assert.Equal(t, "/uploads/b.jpg", photos[1].FilePath)

		got, err := repo.GetItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Len(t, got.Photos, 2)
	})

	t.Run("MissingItemCreatesNothing", func(t *testing.T) {
		repo, db := setupTestRepository(t)

		_, err := repo.CreatePhotos(context.Background(), 12, []string{"/uploads/a.png"})
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

		var count int64
		require.NoError(t, db.Model(&entity.DbPhoto{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		repo, _ := setupTestRepository(t)
		item := mustItem(t, repo, "Clock")

		photos, err := repo.CreatePhotos(context.Background(), item.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, photos)
	})
}
