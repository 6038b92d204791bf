package sql

import (
	"context"
	"path/filepath"
	"testing"

	"homecollection/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRepository creates an in-memory SQLite database for testing.
func setupTestRepository(t *testing.T) (*GormRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	require.NoError(t, err, "Failed to create test database")

	// every connection to ":memory:" is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	return NewGormRepository(db), db
}

// setupFileRepository creates a SQLite file database with the default pool, so
// concurrent callers really use separate connections.
func setupFileRepository(t *testing.T) (*GormRepository, *gorm.DB) {
	t.Helper()

	dsn := SQLiteDSN(filepath.Join(t.TempDir(), "collection.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	require.NoError(t, err, "Failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(8)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	return NewGormRepository(db), db
}

func mustTag(t *testing.T, repo *GormRepository, name string) *entity.DbTag {
	t.Helper()
	tag, _, err := repo.FindOrCreateTag(context.Background(), name, "")
	require.NoError(t, err)
	return tag
}

func mustItem(t *testing.T, repo *GormRepository, name string, tags ...*entity.DbTag) *entity.DbItem {
	t.Helper()
	ids := make([]uint, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	item := &entity.DbItem{Name: name}
	require.NoError(t, repo.CreateItem(context.Background(), item, ids))
	require.NotZero(t, item.ID)
	return item
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, uniqueIDs([]uint{3, 0, 1, 3, 2, 1}))
	assert.Empty(t, uniqueIDs(nil))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "a.db?_txlock=immediate&_busy_timeout=5000&_journal_mode=WAL", SQLiteDSN("a.db"))
	assert.Equal(t, "a.db?cache=shared&_txlock=immediate&_busy_timeout=5000&_journal_mode=WAL", SQLiteDSN("a.db?cache=shared"))
}

func TestNilRepository(t *testing.T) {
	var repo *GormRepository
	ctx := context.Background()

	_, err := repo.ListTags(ctx, entity.ListParams{})
	assert.Error(t, err)
	_, err = repo.ListItems(ctx, entity.ListParams{})
	assert.Error(t, err)
	_, err = repo.CreatePhotos(ctx, 1, []string{"/uploads/a.jpg"})
	assert.Error(t, err)
}
