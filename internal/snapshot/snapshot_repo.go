package snapshot

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=snapshot_repo.go -destination=mock/snapshot_repo_mock.go -package=mock
type Repository interface {
	Migrate(ctx context.Context) error
	LoadAll(ctx context.Context) ([]StoreSnapshot, error)
	SaveAll(ctx context.Context, rows []StoreSnapshot) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&StoreSnapshot{})
}

func (r *repository) LoadAll(ctx context.Context) ([]StoreSnapshot, error) {
	var rows []StoreSnapshot
	err := r.db.WithContext(ctx).
		Order("collection ASC").
		Find(&rows).Error
	return rows, err
}

// SaveAll upserts every row in one statement.
func (r *repository) SaveAll(ctx context.Context, rows []StoreSnapshot) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&rows).Error
}
