package service

import (
	"Nuremento/internal/model"
	"Nuremento/internal/repo"
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

// Моки репозиториев и хранилища фото

type mockMemoryRepo struct{ mock.Mock }

func (m *mockMemoryRepo) Create(ctx context.Context, mem *model.Memory) error {
	return m.Called(ctx, mem).Error(0)
}
func (m *mockMemoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Memory, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.Memory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMemoryRepo) ListRecent(ctx context.Context, ownerID string, limit int) ([]model.Memory, error) {
	args := m.Called(ctx, ownerID, limit)
	if v, ok := args.Get(0).([]model.Memory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMemoryRepo) GetByID(ctx context.Context, ownerID, id string) (*model.Memory, error) {
	args := m.Called(ctx, ownerID, id)
	if v, ok := args.Get(0).(*model.Memory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMemoryRepo) DeleteOwned(ctx context.Context, ownerID, id string) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

var _ repo.MemoryRepository = (*mockMemoryRepo)(nil)

type mockLakeRepo struct{ mock.Mock }

func (m *mockLakeRepo) Create(ctx context.Context, n *model.LakeNote) error {
	return m.Called(ctx, n).Error(0)
}
func (m *mockLakeRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.LakeNote, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.LakeNote); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockLakeRepo) DeleteOwned(ctx context.Context, ownerID, id string) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

var _ repo.LakeNoteRepository = (*mockLakeRepo)(nil)

type mockPickRepo struct{ mock.Mock }

func (m *mockPickRepo) Get(ctx context.Context, ownerID string) (*model.DailyPickState, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).(*model.DailyPickState); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPickRepo) ClaimDay(ctx context.Context, ownerID, day string, now time.Time) (bool, error) {
	args := m.Called(ctx, ownerID, day, now)
	return args.Bool(0), args.Error(1)
}

var _ repo.DailyPickRepository = (*mockPickRepo)(nil)

type mockCapsuleRepo struct{ mock.Mock }

func (m *mockCapsuleRepo) CreateWithinQuota(ctx context.Context, c *model.TimeCapsule, limit int) (bool, error) {
	args := m.Called(ctx, c, limit)
	return args.Bool(0), args.Error(1)
}
func (m *mockCapsuleRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.TimeCapsule, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.TimeCapsule); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCapsuleRepo) GetByID(ctx context.Context, ownerID, id string) (*model.TimeCapsule, error) {
	args := m.Called(ctx, ownerID, id)
	if v, ok := args.Get(0).(*model.TimeCapsule); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCapsuleRepo) MarkOpened(ctx context.Context, ownerID, id string, at time.Time) (bool, error) {
	args := m.Called(ctx, ownerID, id, at)
	return args.Bool(0), args.Error(1)
}
func (m *mockCapsuleRepo) DeleteOwned(ctx context.Context, ownerID, id string) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

var _ repo.CapsuleRepository = (*mockCapsuleRepo)(nil)

type mockImageStore struct{ mock.Mock }

func (m *mockImageStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, body, size, contentType).Error(0)
}
func (m *mockImageStore) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}
func (m *mockImageStore) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}

var _ ImageStore = (*mockImageStore)(nil)
