package repo

import (
	"Nuremento/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LakeNoteRepository - доступ к заметкам «озера».
type LakeNoteRepository interface {
	Create(ctx context.Context, n *model.LakeNote) error
	// ListByOwner возвращает заметки владельца в порядке (created_at, id).
	ListByOwner(ctx context.Context, ownerID string) ([]model.LakeNote, error)
	DeleteOwned(ctx context.Context, ownerID, id string) (deleted bool, err error)
}

type lakeNoteRepo struct {
	db *gorm.DB
}

// NewLakeNoteRepository создаёт реализацию репозитория для LakeNote.
func NewLakeNoteRepository(db *gorm.DB) LakeNoteRepository {
	return &lakeNoteRepo{db: db}
}

func (r *lakeNoteRepo) Create(ctx context.Context, n *model.LakeNote) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *lakeNoteRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.LakeNote, error) {
	var out []model.LakeNote
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *lakeNoteRepo) DeleteOwned(ctx context.Context, ownerID, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.LakeNote{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// DailyPickRepository хранит отметку «заметка дня уже выдана».
type DailyPickRepository interface {
	// Get возвращает состояние владельца или gorm.ErrRecordNotFound.
	Get(ctx context.Context, ownerID string) (*model.DailyPickState, error)
	// ClaimDay атомарно помечает day как выданный.
	// claimed=false - день уже был отмечен (в том числе параллельным запросом).
	ClaimDay(ctx context.Context, ownerID, day string, now time.Time) (claimed bool, err error)
}

type dailyPickRepo struct {
	db *gorm.DB
}

// NewDailyPickRepository создаёт реализацию репозитория для DailyPickState.
func NewDailyPickRepository(db *gorm.DB) DailyPickRepository {
	return &dailyPickRepo{db: db}
}

func (r *dailyPickRepo) Get(ctx context.Context, ownerID string) (*model.DailyPickState, error) {
	var st model.DailyPickState
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// ClaimDay - один условный upsert: строка обновляется только если дата отличается,
// поэтому из двух одновременных запросов за один день RowsAffected > 0 увидит только один.
func (r *dailyPickRepo) ClaimDay(ctx context.Context, ownerID, day string, now time.Time) (bool, error) {
	st := &model.DailyPickState{OwnerID: ownerID, LastServedOn: day, UpdatedAt: now}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_served_on", "updated_at"}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "daily_pick_states.last_served_on <> excluded.last_served_on"},
		}},
	}).Create(st)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
