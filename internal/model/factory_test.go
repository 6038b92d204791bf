package model

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"homecollection/internal/config"
	"homecollection/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRepositoryWithoutDBType(t *testing.T) {
	repo, err := InitRepository(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, repo)
}

func TestCreateRepositoryRejectsUnknownType(t *testing.T) {
	_, err := NewRepositoryFactory().CreateRepository(&config.Config{DBType: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestCreateSQLiteRepositoryCreatesDirectoryAndSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "collection.db")

	repo, err := InitRepository(&config.Config{DBType: DBTypeSQLite, DBPath: dbPath})
	require.NoError(t, err)
	require.NotNil(t, repo)
	assert.FileExists(t, dbPath)

	ctx := context.Background()
	tag, created, err := repo.FindOrCreateTag(ctx, "books", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.DefaultTagColor, tag.Color)

	items, err := repo.ListItems(ctx, entity.ListParams{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSQLiteRepositoryHandlesConcurrentWrites(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "collection.db")
	repo, err := InitRepository(&config.Config{DBType: DBTypeSQLite, DBPath: dbPath})
	require.NoError(t, err)
	require.NotNil(t, repo)
	ctx := context.Background()

	const workers = 32
	tagIDs := make([]uint, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tag, _, err := repo.FindOrCreateTag(ctx, "garage", "")
			errs[i] = err
			if tag != nil {
				tagIDs[i] = tag.ID
			}
		}(i)
	}
	wg.Wait()
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i], "tag create %d", i)
		assert.Equal(t, tagIDs[0], tagIDs[i])
	}

	// 事务内先读后写的操作与普通写入混合并发
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				errs[i] = repo.CreateItem(ctx, &entity.DbItem{Name: fmt.Sprintf("item-%d", i)}, []uint{tagIDs[0]})
				return
			}
			color := fmt.Sprintf("#%06d", i)
			errs[i] = repo.UpdateTag(ctx, tagIDs[0], entity.TagUpdates{Color: &color})
		}(i)
	}
	wg.Wait()
	for i := 0; i < workers; i++ {
		assert.NoError(t, errs[i], "mixed write %d", i)
	}

	items, err := repo.ListItems(ctx, entity.ListParams{})
	require.NoError(t, err)
	assert.Len(t, items, workers/2)
	for _, item := range items {
		assert.Len(t, item.Tags, 1)
	}
}
