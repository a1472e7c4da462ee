package service

import (
	"Nuremento/internal/clock"
	"Nuremento/internal/model"
	"Nuremento/internal/repo"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// MaxCapsulesPerOwner - сколько капсул владелец может держать одновременно.
	MaxCapsulesPerOwner = 10
	// MaxOpenDaysAhead - насколько далеко (в днях) можно назначить открытие.
	MaxOpenDaysAhead = 183

	maxCapsuleMessageLength = 2000
)

// CapsuleService - создание, открытие и удаление капсул времени.
type CapsuleService struct {
	repo       repo.CapsuleRepository
	clock      clock.Clock
	logger     *zap.SugaredLogger
	burnOnOpen bool
}

// NewCapsuleService создаёт сервис. burnOnOpen=true - капсула удаляется при первом открытии.
func NewCapsuleService(r repo.CapsuleRepository, clk clock.Clock, logger *zap.SugaredLogger, burnOnOpen bool) *CapsuleService {
	return &CapsuleService{repo: r, clock: clk, logger: logger, burnOnOpen: burnOnOpen}
}

// CreateCapsuleInput - данные новой капсулы.
type CreateCapsuleInput struct {
	Title   string
	Message string
	OpenOn  string
}

// CapsuleSummary - элемент списка капсул, без текста сообщения.
type CapsuleSummary struct {
	ID       string
	Title    string
	OpenOn   string
	OpenedAt *time.Time
	Locked   bool
}

// Create проверяет ввод и лимиты и сохраняет капсулу.
// Заголовок и сообщение сохраняются как есть, без обрезки.
func (s *CapsuleService) Create(ctx context.Context, ownerID string, in CreateCapsuleInput) (*model.TimeCapsule, error) {
	now := s.clock.Now()
	today := clock.DayOf(now)

	if err := checkCapsuleText("title", in.Title, maxTitleLength); err != nil {
		return nil, err
	}
	if err := checkCapsuleText("message", in.Message, maxCapsuleMessageLength); err != nil {
		return nil, err
	}

	openOn, err := parseOpenOn(in.OpenOn, now.Location())
	if err != nil {
		return nil, err
	}
	if openOn.Before(today) {
		return nil, invalid("openOn", "openOn must be today or later.")
	}
	if today.DaysUntil(openOn) > MaxOpenDaysAhead {
		return nil, invalid("openOn", "openOn cannot be more than six months away.")
	}

	c := &model.TimeCapsule{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     in.Title,
		Message:   in.Message,
		OpenOn:    openOn.String(),
		CreatedAt: now.UTC(),
	}
	created, err := s.repo.CreateWithinQuota(ctx, c, MaxCapsulesPerOwner)
	if err != nil {
		return nil, fmt.Errorf("create capsule: %w", err)
	}
	if !created {
		return nil, invalid("", fmt.Sprintf("You have reached the maximum of %d time capsules.", MaxCapsulesPerOwner))
	}
	return c, nil
}

// List возвращает капсулы владельца с вычисленным состоянием блокировки.
func (s *CapsuleService) List(ctx context.Context, ownerID string) ([]CapsuleSummary, error) {
	today := s.clock.Today()

	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list capsules: %w", err)
	}
	out := make([]CapsuleSummary, 0, len(list))
	for _, c := range list {
		locked := true
		if d, err := clock.ParseDay(c.OpenOn); err == nil {
			locked = today.Before(d)
		} else {
			s.logger.Warnw("capsule with unparsable open date", "capsule_id", c.ID, "open_on", c.OpenOn)
		}
		out = append(out, CapsuleSummary{ID: c.ID, Title: c.Title, OpenOn: c.OpenOn, OpenedAt: c.OpenedAt, Locked: locked})
	}
	return out, nil
}

// Open открывает капсулу.
//   - нет капсулы (или чужая) → ErrNotFound;
//   - дата не наступила → *LockedError, состояние не меняется;
//   - режим burn: капсула удаляется, сообщение получает только тот, чьё удаление прошло;
//   - режим keep: при первом открытии фиксируется opened_at.
func (s *CapsuleService) Open(ctx context.Context, ownerID, id string) (*model.TimeCapsule, error) {
	now := s.clock.Now()
	today := clock.DayOf(now)

	c, err := s.repo.GetByID(ctx, ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load capsule: %w", err)
	}

	openOn, err := clock.ParseDay(c.OpenOn)
	if err != nil {
		return nil, fmt.Errorf("capsule %s open date: %w", c.ID, err)
	}
	if today.Before(openOn) {
		return nil, &LockedError{OpenOn: openOn}
	}

	openedAt := now.UTC()
	if s.burnOnOpen {
		deleted, err := s.repo.DeleteOwned(ctx, ownerID, id)
		if err != nil {
			return nil, fmt.Errorf("consume capsule: %w", err)
		}
		if !deleted {
			return nil, ErrNotFound
		}
		c.OpenedAt = &openedAt
		return c, nil
	}

	if c.OpenedAt != nil {
		return c, nil
	}
	updated, err := s.repo.MarkOpened(ctx, ownerID, id, openedAt)
	if err != nil {
		return nil, fmt.Errorf("mark capsule opened: %w", err)
	}
	if updated {
		c.OpenedAt = &openedAt
		return c, nil
	}

	// кто-то открыл (или удалил) капсулу между чтением и обновлением
	fresh, err := s.repo.GetByID(ctx, ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reload capsule: %w", err)
	}
	return fresh, nil
}

// Delete удаляет капсулу владельца независимо от состояния блокировки.
func (s *CapsuleService) Delete(ctx context.Context, ownerID, id string) error {
	deleted, err := s.repo.DeleteOwned(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete capsule: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func checkCapsuleText(field, value string, limit int) error {
	if _, err := requiredText(field, value, limit); err != nil {
		return err
	}
	return nil
}

// isoDateTime - дата-время в форме ISO 8601: YYYY-MM-DDThh:mm[...].
// Остальные форматы (02/03/2025, unix-время, "Feb 1, 2025") неоднозначны и не принимаются.
var isoDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}`)

// parseOpenOn принимает YYYY-MM-DD либо полную ISO 8601 дату-время,
// которая приводится к календарному дню в часовом поясе сервера.
func parseOpenOn(raw string, loc *time.Location) (clock.Day, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return clock.Day{}, invalid("openOn", "openOn must be an ISO date string.")
	}
	if d, err := clock.ParseDay(v); err == nil {
		return d, nil
	}
	if !isoDateTime.MatchString(v) {
		return clock.Day{}, invalid("openOn", "openOn is not a valid date.")
	}
	t, err := dateparse.ParseIn(v, loc)
	if err != nil {
		return clock.Day{}, invalid("openOn", "openOn is not a valid date.")
	}
	return clock.DayOf(t.In(loc)), nil
}
