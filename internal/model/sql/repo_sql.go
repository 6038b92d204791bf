package sql

import (
	"homecollection/internal/entity"
	"strings"

	"gorm.io/gorm"
)

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Migrate creates or updates the tables backing the repository.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&entity.DbItem{}, "Tags", &entity.DbItemTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&entity.DbItem{},
		&entity.DbTag{},
		&entity.DbItemTag{},
		&entity.DbPhoto{},
	)
}

// SQLiteDSN 为 SQLite 文件路径附加连接参数：写事务以 BEGIN IMMEDIATE 开始，
// 锁冲突时最多等待 5 秒，并启用 WAL 以便读写并发。
func SQLiteDSN(path string) string {
	const params = "_txlock=immediate&_busy_timeout=5000&_journal_mode=WAL"
	if strings.Contains(path, "?") {
		return path + "&" + params
	}
	return path + "?" + params
}

// paginate applies skip/limit to a query. Out-of-range values fall back to
// safe defaults; the upper bound is enforced by the API layer.
func (r *GormRepository) paginate(query *gorm.DB, params entity.ListParams) *gorm.DB {
	skip := params.Skip
	if skip < 0 {
		skip = 0
	}
	limit := params.Limit
	if limit <= 0 {
		limit = entity.DefaultPageLimit
	}
	return query.Offset(skip).Limit(limit)
}

// uniqueIDs drops zero and repeated ids while keeping the first-seen order.
func uniqueIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
