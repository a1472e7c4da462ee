package repo

import (
	"Nuremento/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CapsuleRepository - доступ к капсулам времени. Все методы ограничены владельцем.
type CapsuleRepository interface {
	// CreateWithinQuota создаёт капсулу, если у владельца их меньше limit.
	// created=false - лимит исчерпан, запись не создана.
	CreateWithinQuota(ctx context.Context, c *model.TimeCapsule, limit int) (created bool, err error)
	// ListByOwner возвращает капсулы владельца по дате открытия.
	ListByOwner(ctx context.Context, ownerID string) ([]model.TimeCapsule, error)
	// GetByID возвращает капсулу владельца или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, ownerID, id string) (*model.TimeCapsule, error)
	// MarkOpened выставляет opened_at, только если он ещё пуст.
	MarkOpened(ctx context.Context, ownerID, id string, at time.Time) (updated bool, err error)
	// DeleteOwned удаляет капсулу владельца; deleted=true получает ровно один вызывающий.
	DeleteOwned(ctx context.Context, ownerID, id string) (deleted bool, err error)
}

var errQuotaReached = errors.New("capsule quota reached")

type capsuleRepo struct {
	db *gorm.DB
}

// NewCapsuleRepository создаёт реализацию репозитория для TimeCapsule.
func NewCapsuleRepository(db *gorm.DB) CapsuleRepository {
	return &capsuleRepo{db: db}
}

func (r *capsuleRepo) CreateWithinQuota(ctx context.Context, c *model.TimeCapsule, limit int) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// FOR UPDATE на строках владельца сериализует конкурентные создания в PostgreSQL;
		// SQLite-диалект клаузу пропускает, там записи и так идут по одной.
		var ids []string
		if err := tx.Model(&model.TimeCapsule{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ?", c.OwnerID).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) >= limit {
			return errQuotaReached
		}
		return tx.Create(c).Error
	})
	if errors.Is(err, errQuotaReached) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *capsuleRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.TimeCapsule, error) {
	var out []model.TimeCapsule
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("open_on ASC").Order("created_at ASC").Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *capsuleRepo) GetByID(ctx context.Context, ownerID, id string) (*model.TimeCapsule, error) {
	var c model.TimeCapsule
	if err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *capsuleRepo) MarkOpened(ctx context.Context, ownerID, id string, at time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.TimeCapsule{}).
		Where("id = ? AND owner_id = ? AND opened_at IS NULL", id, ownerID).
		Update("opened_at", at)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *capsuleRepo) DeleteOwned(ctx context.Context, ownerID, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.TimeCapsule{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
