package boltdb

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/trackkeeper/internal/client/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "trackkeeper.db")

	store := New(dbPath, testLogger())
	require.True(t, store.Initialize(context.Background()))
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store, dbPath
}

func record(id, owner, data string) storage.Record {
	return storage.Record{ID: id, Owner: owner, Data: json.RawMessage(data)}
}

func ids(records []storage.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	sort.Strings(out)
	return out
}

func TestInitialize_CreatesBuckets(t *testing.T) {
	store, dbPath := createTestStorage(t)

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, name := range storage.KnownCollections {
			root := tx.Bucket([]byte(name))
			if root == nil || root.Bucket(bucketRecords) == nil || root.Bucket(bucketByOwner) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)

	// Повторный вызов идемпотентен
	assert.True(t, store.Initialize(context.Background()))
}

func TestInitialize_InvalidPath(t *testing.T) {
	ctx := context.Background()
	// Каталог вместо файла не может быть открыт как БД
	store := New(t.TempDir(), testLogger())

	assert.False(t, store.Initialize(ctx))

	// Хранилище деградирует: пустые результаты и false вместо ошибок
	assert.Empty(t, store.GetAll(ctx, storage.CollectionQueue, ""))
	assert.False(t, store.Put(ctx, storage.CollectionQueue, record("1", "", `{}`)))
	assert.False(t, store.Delete(ctx, storage.CollectionQueue, "1"))
	assert.False(t, store.Clear(ctx, storage.CollectionQueue))
	_, ok := store.Get(ctx, storage.CollectionQueue, "1")
	assert.False(t, ok)
	assert.NoError(t, store.Close())
}

func TestClose(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "close.db"), testLogger())
	require.True(t, store.Initialize(context.Background()))

	assert.NoError(t, store.Close())
	// После закрытия поле db должно стать nil
	assert.Nil(t, store.db)
	// Второй вызов Close не должен падать
	assert.NoError(t, store.Close())
}

func TestPutGetAll(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStorage(t)

	require.True(t, store.Put(ctx, "entries", record("e1", "alice", `{"weight_kg":80.5}`)))
	require.True(t, store.Put(ctx, "entries", record("e2", "bob", `{"weight_kg":70}`)))

	all := store.GetAll(ctx, "entries", "")
	assert.Equal(t, []string{"e1", "e2"}, ids(all))

	got, ok := store.Get(ctx, "entries", "e1")
	require.True(t, ok)
	assert.Equal(t, "alice", got.Owner)
	assert.JSONEq(t, `{"weight_kg":80.5}`, string(got.Data))

	_, ok = store.Get(ctx, "entries", "missing")
	assert.False(t, ok)
}

func TestPut_Upsert(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStorage(t)

	require.True(t, store.Put(ctx, "tasks", record("t1", "alice", `{"done":false}`)))
	require.True(t, store.Put(ctx, "tasks", record("t1", "alice", `{"done":true}`)))

	all := store.GetAll(ctx, "tasks", "")
	require.Len(t, all, 1)
	assert.JSONEq(t, `{"done":true}`, string(all[0].Data))
}

func TestPut_EmptyID(t *testing.T) {
	store, _ := createTestStorage(t)
	assert.False(t, store.Put(context.Background(), "tasks", record("", "alice", `{}`)))
}

func TestGetAll_OwnerFilter(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStorage(t)

	require.True(t, store.Put(ctx, "habits", record("h1", "alice", `{}`)))
	require.True(t, store.Put(ctx, "habits", record("h2", "alice", `{}`)))
	require.True(t, store.Put(ctx, "habits", record("h3", "bob", `{}`)))
	// Владелец-префикс другого владельца не должен попадать в выборку
	require.True(t, store.Put(ctx, "habits", record("h4", "alice2", `{}`)))
	require.True(t, store.Put(ctx, "habits", record("h5", "", `{}`)))

	assert.Equal(t, []string{"h1", "h2"}, ids(store.GetAll(ctx, "habits", "alice")))
	assert.Equal(t, []string{"h3"}, ids(store.GetAll(ctx, "habits", "bob")))
	assert.Empty(t, store.GetAll(ctx, "habits", "carol"))
	assert.Len(t, store.GetAll(ctx, "habits", ""), 5)

	t.Run("owner change moves index entry", func(t *testing.T) {
		require.True(t, store.Put(ctx, "habits", record("h1", "bob", `{}`)))
		assert.Equal(t, []string{"h2"}, ids(store.GetAll(ctx, "habits", "alice")))
		assert.Equal(t, []string{"h1", "h3"}, ids(store.GetAll(ctx, "habits", "bob")))
	})
}

func TestGetAll_SkipsUndecodableRecord(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStorage(t)

	require.True(t, store.Put(ctx, "queue", record("op-1", "alice", `{}`)))
	require.True(t, store.Put(ctx, "queue", record("op-2", "alice", `{}`)))

	// Портим одну запись в обход Put
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte("queue")).Bucket(bucketRecords).Put([]byte("op-1"), []byte("{not json"))
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"op-2"}, ids(store.GetAll(ctx, "queue", "")))
	assert.Equal(t, []string{"op-2"}, ids(store.GetAll(ctx, "queue", "alice")))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStorage(t)

	require.True(t, store.Put(ctx, "queue", record("op1", "alice", `{}`)))
	assert.True(t, store.Delete(ctx, "queue", "op1"))
	assert.Empty(t, store.GetAll(ctx, "queue", ""))
	assert.Empty(t, store.GetAll(ctx, "queue", "alice"))

	// Удаление отсутствующей записи - успешный no-op
	assert.True(t, store.Delete(ctx, "queue", "op1"))
	assert.True(t, store.Delete(ctx, "unknown-collection", "op1"))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStorage(t)

	require.True(t, store.Put(ctx, "failed", record("f1", "alice", `{}`)))
	require.True(t, store.Put(ctx, "failed", record("f2", "alice", `{}`)))
	require.True(t, store.Put(ctx, "queue", record("q1", "alice", `{}`)))

	assert.True(t, store.Clear(ctx, "failed"))
	assert.Empty(t, store.GetAll(ctx, "failed", ""))
	assert.Empty(t, store.GetAll(ctx, "failed", "alice"))
	// Другие коллекции не затронуты
	assert.Len(t, store.GetAll(ctx, "queue", ""), 1)

	// Коллекция пригодна для записи после очистки
	assert.True(t, store.Put(ctx, "failed", record("f3", "", `{}`)))
}

func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store := New(dbPath, testLogger())
	require.True(t, store.Initialize(ctx))
	require.True(t, store.Put(ctx, "queue", record("op1", "alice", `{"kind":"create"}`)))
	require.True(t, store.Put(ctx, "queue", record("op2", "alice", `{"kind":"delete"}`)))
	require.NoError(t, store.Close())

	reopened := New(dbPath, testLogger())
	require.True(t, reopened.Initialize(ctx))
	defer reopened.Close()

	assert.Equal(t, []string{"op1", "op2"}, ids(reopened.GetAll(ctx, "queue", "alice")))
}
