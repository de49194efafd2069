package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&model.User{}, &model.Food{}))
	return gdb
}

func testItem() *entity.Item {
	expires := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return &entity.Item{
		Name:           "Milk",
		Category:       entity.CategoryLacteos,
		Perishable:     true,
		Quantity:       2,
		Unit:           entity.UnitL,
		EntryDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpirationDate: &expires,
	}
}

func TestUserRepository(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	t.Run("create assigns an id", func(t *testing.T) {
		identity, err := repo.CreateUser(ctx, "a@x.com")
		require.NoError(t, err)
		assert.NotEmpty(t, identity.ID)
		assert.Equal(t, "a@x.com", identity.Email)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		_, err := repo.CreateUser(ctx, "a@x.com")
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("lookup by email", func(t *testing.T) {
		identity, err := repo.GetUserByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", identity.Email)
	})

	t.Run("missing email is not found", func(t *testing.T) {
		_, err := repo.GetUserByEmail(ctx, "missing@x.com")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list users", func(t *testing.T) {
		_, err := repo.CreateUser(ctx, "b@x.com")
		require.NoError(t, err)
		users, err := repo.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestItemRepository(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewItemRepository(gdb)
	ctx := context.Background()

	t.Run("create assigns a server id and returns canonical form", func(t *testing.T) {
		item := testItem()
		item.ID = "client-fabricated-id"

		created, err := repo.CreateItem(ctx, item, "a@x.com")
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.NotEqual(t, "client-fabricated-id", created.ID)
		assert.Equal(t, item.Name, created.Name)
		require.NotNil(t, created.ExpirationDate)
	})

	t.Run("list is scoped by owner email", func(t *testing.T) {
		_, err := repo.CreateItem(ctx, testItem(), "b@x.com")
		require.NoError(t, err)

		items, err := repo.ListItemsByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Len(t, items, 1)

		items, err = repo.ListItemsByEmail(ctx, "nobody@x.com")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("delete refuses an id owned by a different email", func(t *testing.T) {
		owned, err := repo.CreateItem(ctx, testItem(), "e1@x.com")
		require.NoError(t, err)

		err = repo.DeleteItem(ctx, owned.ID, "e2@x.com")
		require.ErrorIs(t, err, ErrNotFound)

		// The item must still be stored for its true owner
		items, err := repo.ListItemsByEmail(ctx, "e1@x.com")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("delete removes a matching (id, email) pair", func(t *testing.T) {
		created, err := repo.CreateItem(ctx, testItem(), "c@x.com")
		require.NoError(t, err)

		require.NoError(t, repo.DeleteItem(ctx, created.ID, "c@x.com"))

		items, err := repo.ListItemsByEmail(ctx, "c@x.com")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("delete of an unknown id is not found", func(t *testing.T) {
		err := repo.DeleteItem(ctx, "no-such-id", "a@x.com")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
