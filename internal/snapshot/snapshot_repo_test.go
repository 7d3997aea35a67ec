package snapshot_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-dinas/internal/snapshot"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (snapshot.Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return snapshot.NewRepository(gdb), mock
}

func TestSnapshotRepository_LoadAll(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Date(2025, 4, 20, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "store_snapshots" ORDER BY collection ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"collection", "data", "updated_at"}).
			AddRow("branch", []byte(`{"next_id":1,"rows":[]}`), now))

	rows, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "branch", rows[0].Collection)
	assert.JSONEq(t, `{"next_id":1,"rows":[]}`, string(rows[0].Data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_SaveAll(t *testing.T) {
	t.Run("upserts on collection", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "store_snapshots" .* ON CONFLICT \("collection"\) DO UPDATE SET`).
			WithArgs("branch", sqlmock.AnyArg(), sqlmock.AnyArg(), "role", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := repo.SaveAll(context.Background(), []snapshot.StoreSnapshot{
			{Collection: "branch", Data: datatypes.JSON(`{"next_id":0,"rows":[]}`)},
			{Collection: "role", Data: datatypes.JSON(`{"next_id":0,"rows":[]}`)},
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing to write", func(t *testing.T) {
		repo, mock := setupRepo(t)
		require.NoError(t, repo.SaveAll(context.Background(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
