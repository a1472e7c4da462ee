package repo

import (
	"Nuremento/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mkMemory(id, owner string, created time.Time) model.Memory {
	return model.Memory{ID: id, OwnerID: owner, Title: "t-" + id, Description: "d-" + id, CreatedAt: created.UTC()}
}

func TestMemoryRepository_ListByOwner_StableOrder(t *testing.T) {
	db := newTestDB(t)
	r := NewMemoryRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	// "b" и "a" созданы в одну и ту же секунду - порядок решает id
	items := []model.Memory{
		mkMemory("c", "u1", base.Add(2*time.Hour)),
		mkMemory("b", "u1", base),
		mkMemory("a", "u1", base),
		mkMemory("x", "u2", base),
	}
	for i := range items {
		it := items[i]
		require.NoError(t, r.Create(ctx, &it))
	}

	all, err := r.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	if assert.Len(t, all, 3) {
		assert.Equal(t, "a", all[0].ID)
		assert.Equal(t, "b", all[1].ID)
		assert.Equal(t, "c", all[2].ID)
	}

	recent, err := r.ListRecent(ctx, "u1", 2)
	require.NoError(t, err)
	if assert.Len(t, recent, 2) {
		assert.Equal(t, "c", recent[0].ID)
		assert.Equal(t, "b", recent[1].ID)
	}

	none, err := r.ListByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryRepository_GetAndDelete_ScopedByOwner(t *testing.T) {
	db := newTestDB(t)
	r := NewMemoryRepository(db)
	ctx := context.Background()

	m := mkMemory("m1", "owner", time.Now())
	require.NoError(t, r.Create(ctx, &m))

	got, err := r.GetByID(ctx, "owner", "m1")
	require.NoError(t, err)
	assert.Equal(t, "t-m1", got.Title)

	got, err = r.GetByID(ctx, "intruder", "m1")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	deleted, err := r.DeleteOwned(ctx, "intruder", "m1")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = r.DeleteOwned(ctx, "owner", "m1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = r.DeleteOwned(ctx, "owner", "m1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
