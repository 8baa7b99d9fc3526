package harmonization

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gcs-food-backend/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

var harmonizationColumns = []string{
	"id", "title", "description", "item1_name", "item2_name", "image_url", "item1_color", "user_id", "created_at",
}

func TestHarmonizationRepository_FindManySearchesAllTextColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHarmonizationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "harmonizations" WHERE user_id = \$1 AND .*title ILIKE \$2 OR description ILIKE \$3 OR item1_name ILIKE \$4 OR item2_name ILIKE \$5.* ORDER BY created_at asc`).
		WithArgs("user-1", "%brie%", "%brie%", "%brie%", "%brie%").
		WillReturnRows(sqlmock.NewRows(harmonizationColumns).AddRow(
			"harm-4", "Queijo Brie & Geleia de Damasco", "Doce e cremoso", "Queijo Brie", "Geleia de Damasco",
			"/placeholder.svg", "text-orange-400", "user-1", time.Now(),
		))

	got, err := repo.FindMany(context.Background(), domain.HarmonizationWhere{UserID: "user-1", Search: "brie"}, domain.HarmonizationInclude{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Queijo Brie", got[0].Item1Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHarmonizationRepository_FindUniqueMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHarmonizationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "harmonizations" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(harmonizationColumns))

	got, err := repo.FindUnique(context.Background(), "harm-404", domain.HarmonizationInclude{User: true})
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
