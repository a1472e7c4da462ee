package service

import (
	"Nuremento/internal/clock"
	"Nuremento/internal/model"
	"Nuremento/internal/picker"
	"Nuremento/internal/repo"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DailyService выбирает «запись дня»: воспоминание (без ограничений)
// и заметку из озера (не больше одной в календарный день).
type DailyService struct {
	memories repo.MemoryRepository
	notes    repo.LakeNoteRepository
	picks    repo.DailyPickRepository
	clock    clock.Clock
	logger   *zap.SugaredLogger
}

func NewDailyService(
	memories repo.MemoryRepository,
	notes repo.LakeNoteRepository,
	picks repo.DailyPickRepository,
	clk clock.Clock,
	logger *zap.SugaredLogger,
) *DailyService {
	return &DailyService{memories: memories, notes: notes, picks: picks, clock: clk, logger: logger}
}

// MemoryOfTheDay возвращает воспоминание дня или nil, если воспоминаний нет.
// В течение дня при неизменной коллекции результат один и тот же.
func (s *DailyService) MemoryOfTheDay(ctx context.Context, ownerID string) (*model.Memory, error) {
	today := s.clock.Today()

	items, err := s.memories.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list memories: %w", err)
	}
	m, ok := picker.Pick(items, ownerID, today)
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// LakeNoteOfTheDay выдаёт заметку дня один раз за календарный день.
// nil без ошибки означает «сегодня уже выдавали» или «озеро пустое».
func (s *DailyService) LakeNoteOfTheDay(ctx context.Context, ownerID string) (*model.LakeNote, error) {
	now := s.clock.Now()
	today := clock.DayOf(now)
	todayKey := today.String()

	st, err := s.picks.Get(ctx, ownerID)
	switch {
	case err == nil && st.LastServedOn == todayKey:
		return nil, nil
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("load daily pick state: %w", err)
	}

	notes, err := s.notes.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list lake notes: %w", err)
	}
	note, ok := picker.Pick(notes, ownerID, today)
	if !ok {
		return nil, nil
	}

	// выдача засчитывается только после успешной отметки дня
	claimed, err := s.picks.ClaimDay(ctx, ownerID, todayKey, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("claim daily pick: %w", err)
	}
	if !claimed {
		s.logger.Debugw("lake note already served by a concurrent request", "owner_id", ownerID, "day", todayKey)
		return nil, nil
	}
	return &note, nil
}
