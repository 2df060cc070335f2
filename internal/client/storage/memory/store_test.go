package memory

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/trackkeeper/internal/client/storage"
)

func TestStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.True(t, s.Initialize(ctx))
	require.True(t, s.Initialize(ctx))

	assert.Empty(t, s.GetAll(ctx, "entries", ""))

	require.True(t, s.Put(ctx, "entries", storage.Record{ID: "e1", Owner: "alice", Data: json.RawMessage(`{"a":1}`)}))
	require.True(t, s.Put(ctx, "entries", storage.Record{ID: "e2", Owner: "bob", Data: json.RawMessage(`{"a":2}`)}))
	require.True(t, s.Put(ctx, "entries", storage.Record{ID: "e1", Owner: "alice", Data: json.RawMessage(`{"a":3}`)}))

	assert.Len(t, s.GetAll(ctx, "entries", ""), 2)

	mine := s.GetAll(ctx, "entries", "alice")
	require.Len(t, mine, 1)
	assert.JSONEq(t, `{"a":3}`, string(mine[0].Data))

	assert.True(t, s.Delete(ctx, "entries", "e1"))
	assert.True(t, s.Delete(ctx, "entries", "e1"))
	assert.True(t, s.Delete(ctx, "nothing", "e1"))
	_, ok := s.Get(ctx, "entries", "e1")
	assert.False(t, ok)

	assert.True(t, s.Clear(ctx, "entries"))
	assert.Empty(t, s.GetAll(ctx, "entries", ""))

	assert.False(t, s.Put(ctx, "entries", storage.Record{}))
	assert.NoError(t, s.Close())
}

func TestStore_CopiesData(t *testing.T) {
	ctx := context.Background()
	s := New()

	data := []byte(`{"v":1}`)
	require.True(t, s.Put(ctx, "tasks", storage.Record{ID: "t1", Data: data}))
	data[5] = '9'

	got, ok := s.Get(ctx, "tasks", "t1")
	require.True(t, ok)
	assert.JSONEq(t, `{"v":1}`, string(got.Data))

	got.Data[5] = '7'
	again, _ := s.Get(ctx, "tasks", "t1")
	assert.JSONEq(t, `{"v":1}`, string(again.Data))
}

func TestStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%26))
			s.Put(ctx, "queue", storage.Record{ID: id, Data: json.RawMessage(`{}`)})
			s.GetAll(ctx, "queue", "")
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.GetAll(ctx, "queue", ""), 26)
}
