package preferences

import (
	"context"
	"errors"
	"testing"
	"time"

	"unit-converter/internal/kvstore"
	"unit-converter/internal/units"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func newTestService(store kvstore.KeyValueStore) *Service {
	svc := NewService(store, "test:", time.Hour)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestServiceSaveAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(kvstore.NewMemory())

	saved, err := svc.Save(ctx, "client-1", Preference{Category: units.Area, From: "py", To: "m2"})
	require.NoError(t, err)
	assert.True(t, fixedNow.Equal(saved.UpdatedAt))

	got, err := svc.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, units.Area, got.Category)
	assert.Equal(t, "py", got.From)
	assert.Equal(t, "m2", got.To)
	assert.True(t, fixedNow.Equal(got.UpdatedAt))
}

func TestServiceGetMissing(t *testing.T) {
	svc := newTestService(kvstore.NewMemory())

	_, err := svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(kvstore.NewMemory())

	_, err := svc.Save(ctx, "client-1", Preference{Category: units.Length, From: "m", To: "kg"})
	assert.ErrorIs(t, err, ErrInvalidSelection)

	_, err = svc.Save(ctx, "client-1", Preference{Category: "speed", From: "a", To: "b"})
	assert.ErrorIs(t, err, ErrInvalidSelection)

	_, err = svc.Save(ctx, "has space", Preference{Category: units.Length, From: "m", To: "km"})
	assert.ErrorIs(t, err, ErrInvalidClientID)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidClientID)
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(kvstore.NewMemory())

	_, err := svc.Save(ctx, "client-1", Preference{Category: units.Temperature, From: "c", To: "f"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "client-1"))
	_, err = svc.Get(ctx, "client-1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, svc.Delete(ctx, "client-1"))
}

func TestServiceWithRedisAppliesPrefixAndTTL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	ctx := context.Background()
	store := kvstore.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	svc := newTestService(store)

	_, err = svc.Save(ctx, "client-9", Preference{Category: units.Weight, From: "kg", To: "lb"})
	require.NoError(t, err)

	assert.True(t, mr.Exists("test:pref:client-9"))
	assert.Equal(t, time.Hour, mr.TTL("test:pref:client-9"))

	mr.FastForward(2 * time.Hour)
	_, err = svc.Get(ctx, "client-9")
	assert.ErrorIs(t, err, ErrNotFound)
}

type failingStore struct{ *kvstore.Memory }

func (*failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func TestServiceWrapsStoreErrors(t *testing.T) {
	svc := newTestService(&failingStore{kvstore.NewMemory()})

	_, err := svc.Get(context.Background(), "client-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestServiceRejectsCorruptValue(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(ctx, "test:pref:client-1", []byte{0xc1}, 0))

	_, err := newTestService(store).Get(ctx, "client-1")
	assert.Error(t, err)
}
