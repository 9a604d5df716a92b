package keydb

import (
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ToufeeqP/offline-election/internal/cache"
	"github.com/ToufeeqP/offline-election/internal/interfaces/mock"
	"github.com/ToufeeqP/offline-election/internal/models"
	"github.com/ToufeeqP/offline-election/internal/snapshot"
)

func testConfig() *Config {
	cfg := &Config{URL: "redis://localhost:6379"}
	cfg.ApplyDefaults()
	return cfg
}

func TestStore_Load_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	s := NewStore(testConfig(), client, zap.NewNop())

	pairs := []models.KeyValuePair{
		{Key: models.StorageKey{0x01}, Value: models.StorageValue{0xaa}},
	}
	encoded := snapshot.Encode(pairs)

	client.EXPECT().Get(gomock.Any(), "id.bin").
		Return(redis.NewStringResult(string(encoded), nil))

	got, err := s.Load("id.bin")
	require.NoError(t, err)
	assert.Equal(t, pairs, got)
}

func TestStore_Load_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	s := NewStore(testConfig(), client, zap.NewNop())

	client.EXPECT().Get(gomock.Any(), "id.bin").
		Return(redis.NewStringResult("", redis.Nil))

	_, err := s.Load("id.bin")
	require.ErrorIs(t, err, cache.ErrMiss)
	assert.Contains(t, err.Error(), "absent")
}

func TestStore_Load_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	s := NewStore(testConfig(), client, zap.NewNop())

	client.EXPECT().Get(gomock.Any(), "id.bin").
		Return(redis.NewStringResult("", errors.New("connection reset")))

	_, err := s.Load("id.bin")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestStore_Load_CorruptEntryDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	s := NewStore(testConfig(), client, zap.NewNop())

	client.EXPECT().Get(gomock.Any(), "id.bin").
		Return(redis.NewStringResult("garbage", nil))
	client.EXPECT().Del(gomock.Any(), "id.bin").
		Return(redis.NewIntResult(1, nil))

	_, err := s.Load("id.bin")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestStore_Store(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	s := NewStore(testConfig(), client, zap.NewNop())

	pairs := []models.KeyValuePair{
		{Key: models.StorageKey{0x01}, Value: models.StorageValue{0xaa}},
	}

	client.EXPECT().
		Set(gomock.Any(), "id.bin", snapshot.Encode(pairs), gomock.Any()).
		Return(redis.NewStatusResult("OK", nil))

	assert.NoError(t, s.Store("id.bin", pairs))
}

func TestStore_Store_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	s := NewStore(testConfig(), client, zap.NewNop())

	client.EXPECT().
		Set(gomock.Any(), "id.bin", gomock.Any(), gomock.Any()).
		Return(redis.NewStatusResult("", errors.New("readonly replica")))

	err := s.Store("id.bin", nil)
	assert.ErrorIs(t, err, cache.ErrWrite)
}
