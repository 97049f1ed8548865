package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/bookkeeper/internal/client/storage"
)

// newTestStorage создаёт временное BoltDB хранилище
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "state.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSession, bucketMetadata} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// Каталога не существует, bbolt не сможет создать файл
	dbPath := filepath.Join(t.TempDir(), "missing", "dir", "state.db")

	store, err := New(context.Background(), dbPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNew_Reopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "state.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveSession(ctx, &storage.SessionData{Email: "admin@gmail.com", Role: "admin"}))
	require.NoError(t, store.Close())

	// Повторное открытие не теряет данные
	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin@gmail.com", got.Email)
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Второй вызов Close ничего не делает
	assert.NoError(t, store.Close())

	// Операции после закрытия возвращают ErrStorageClosed
	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	err = store.SaveLastSync(ctx, storage.SyncInfo{})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestInitBuckets_CreatesBuckets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	// Открываем БД вручную без создания бакетов
	db, err := bbolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	defer db.Close()

	store := &Storage{db: db}

	err = store.initBuckets()
	assert.NoError(t, err)

	// Повторная инициализация идемпотентна
	err = store.initBuckets()
	assert.NoError(t, err)

	err = db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSession, bucketMetadata} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	assert.NoError(t, err)
}
