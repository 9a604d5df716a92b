package multi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ToufeeqP/offline-election/internal/cache"
	"github.com/ToufeeqP/offline-election/internal/interfaces/mock"
	"github.com/ToufeeqP/offline-election/internal/models"
)

var testPairs = []models.KeyValuePair{
	{Key: models.StorageKey{0x01}, Value: models.StorageValue{0xaa}},
}

func miss(reason string) error {
	return fmt.Errorf("%w: %s", cache.ErrMiss, reason)
}

func TestLoad_FirstTierHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fast := mock.NewMockSnapshotStore(ctrl)
	slow := mock.NewMockSnapshotStore(ctrl)
	s := New([]Tier{{Name: "memory", Store: fast}, {Name: "disk", Store: slow}}, zap.NewNop())

	fast.EXPECT().Load("id.bin").Return(testPairs, nil)
	// slow.Load must not be called when the fast tier hits.

	got, err := s.Load("id.bin")
	require.NoError(t, err)
	assert.Equal(t, testPairs, got)
}

func TestLoad_FallsThroughToSecondTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fast := mock.NewMockSnapshotStore(ctrl)
	slow := mock.NewMockSnapshotStore(ctrl)
	s := New([]Tier{{Name: "memory", Store: fast}, {Name: "disk", Store: slow}}, zap.NewNop())

	fast.EXPECT().Load("id.bin").Return(nil, miss("entry absent"))
	slow.EXPECT().Load("id.bin").Return(testPairs, nil)

	got, err := s.Load("id.bin")
	require.NoError(t, err)
	assert.Equal(t, testPairs, got)
}

func TestLoad_AllTiersMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fast := mock.NewMockSnapshotStore(ctrl)
	slow := mock.NewMockSnapshotStore(ctrl)
	s := New([]Tier{{Name: "memory", Store: fast}, {Name: "disk", Store: slow}}, zap.NewNop())

	fast.EXPECT().Load("id.bin").Return(nil, miss("entry absent"))
	slow.EXPECT().Load("id.bin").Return(nil, miss("file absent"))

	_, err := s.Load("id.bin")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestLoad_NoTiers(t *testing.T) {
	s := New(nil, zap.NewNop())

	_, err := s.Load("id.bin")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestStore_WritesAllTiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fast := mock.NewMockSnapshotStore(ctrl)
	slow := mock.NewMockSnapshotStore(ctrl)
	s := New([]Tier{{Name: "memory", Store: fast}, {Name: "disk", Store: slow}}, zap.NewNop())

	fast.EXPECT().Store("id.bin", testPairs).Return(nil)
	slow.EXPECT().Store("id.bin", testPairs).Return(nil)

	assert.NoError(t, s.Store("id.bin", testPairs))
}

func TestStore_OneTierFails_OthersStillWritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fast := mock.NewMockSnapshotStore(ctrl)
	slow := mock.NewMockSnapshotStore(ctrl)
	s := New([]Tier{{Name: "memory", Store: fast}, {Name: "disk", Store: slow}}, zap.NewNop())

	fast.EXPECT().Store("id.bin", testPairs).Return(fmt.Errorf("%w: out of memory", cache.ErrWrite))
	slow.EXPECT().Store("id.bin", testPairs).Return(nil)

	err := s.Store("id.bin", testPairs)
	assert.ErrorIs(t, err, cache.ErrWrite)
}
