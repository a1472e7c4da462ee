package repo

import (
	"Nuremento/internal/model"
	"context"

	"gorm.io/gorm"
)

// MemoryRepository - доступ к воспоминаниям. Все методы ограничены владельцем.
type MemoryRepository interface {
	Create(ctx context.Context, m *model.Memory) error
	// ListByOwner возвращает все записи владельца в стабильном порядке (created_at, id).
	ListByOwner(ctx context.Context, ownerID string) ([]model.Memory, error)
	// ListRecent возвращает последние limit записей, новые первыми.
	ListRecent(ctx context.Context, ownerID string, limit int) ([]model.Memory, error)
	GetByID(ctx context.Context, ownerID, id string) (*model.Memory, error)
	// DeleteOwned удаляет запись владельца; deleted=false если удалять было нечего.
	DeleteOwned(ctx context.Context, ownerID, id string) (deleted bool, err error)
}

type memoryRepo struct {
	db *gorm.DB
}

// NewMemoryRepository создаёт реализацию репозитория для Memory.
func NewMemoryRepository(db *gorm.DB) MemoryRepository {
	return &memoryRepo{db: db}
}

func (r *memoryRepo) Create(ctx context.Context, m *model.Memory) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *memoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Memory, error) {
	var out []model.Memory
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *memoryRepo) ListRecent(ctx context.Context, ownerID string, limit int) ([]model.Memory, error) {
	var out []model.Memory
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *memoryRepo) GetByID(ctx context.Context, ownerID, id string) (*model.Memory, error) {
	var m model.Memory
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memoryRepo) DeleteOwned(ctx context.Context, ownerID, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.Memory{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
