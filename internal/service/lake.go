package service

import (
	"Nuremento/internal/clock"
	"Nuremento/internal/model"
	"Nuremento/internal/repo"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxLakeMessageLength = 2000

// LakeService - заметки «озера». Выдача заметки дня живёт в DailyService.
type LakeService struct {
	repo   repo.LakeNoteRepository
	clock  clock.Clock
	logger *zap.SugaredLogger
}

func NewLakeService(r repo.LakeNoteRepository, clk clock.Clock, logger *zap.SugaredLogger) *LakeService {
	return &LakeService{repo: r, clock: clk, logger: logger}
}

func (s *LakeService) Create(ctx context.Context, ownerID, title, message string) (*model.LakeNote, error) {
	t, err := requiredText("title", title, maxTitleLength)
	if err != nil {
		return nil, err
	}
	msg, err := requiredText("message", message, maxLakeMessageLength)
	if err != nil {
		return nil, err
	}

	n := &model.LakeNote{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     t,
		Message:   msg,
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("save lake note: %w", err)
	}
	return n, nil
}

func (s *LakeService) Delete(ctx context.Context, ownerID, id string) error {
	deleted, err := s.repo.DeleteOwned(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete lake note: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
