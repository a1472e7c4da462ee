package service

import (
	"Nuremento/internal/clock"
	"Nuremento/internal/model"
	"Nuremento/internal/repo"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ThumbnailTTL - время жизни подписанной ссылки на фото.
const ThumbnailTTL = 5 * time.Minute

// ImageStore - хранилище фото воспоминаний (S3 или совместимое).
type ImageStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, keys ...string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// допустимые типы фото и расширения ключей
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
	"image/heif": ".heif",
}

// MemoryInput - поля нового воспоминания в том виде, как их прислал клиент.
type MemoryInput struct {
	Title       string
	Description string
	Mood        *string
	Location    *string
	OccurredOn  *string
}

// ImageUpload - прикреплённое фото.
type ImageUpload struct {
	Body        io.Reader
	Size        int64
	ContentType string
	FileName    string
}

type MemoryService struct {
	repo          repo.MemoryRepository
	images        ImageStore // nil - загрузка фото отключена
	clock         clock.Clock
	logger        *zap.SugaredLogger
	maxImageBytes int64
}

func NewMemoryService(r repo.MemoryRepository, images ImageStore, clk clock.Clock, logger *zap.SugaredLogger, maxImageBytes int64) *MemoryService {
	return &MemoryService{repo: r, images: images, clock: clk, logger: logger, maxImageBytes: maxImageBytes}
}

// ImagesEnabled сообщает, настроено ли хранилище фото.
func (s *MemoryService) ImagesEnabled() bool {
	return s.images != nil
}

// Create проверяет поля, загружает фото (если есть) и сохраняет запись.
// Если запись сохранить не удалось, загруженный объект удаляется.
func (s *MemoryService) Create(ctx context.Context, ownerID string, in MemoryInput, img *ImageUpload) (*model.Memory, error) {
	m, err := s.buildMemory(ownerID, in)
	if err != nil {
		return nil, err
	}

	if img != nil {
		key, err := s.uploadImage(ctx, ownerID, img)
		if err != nil {
			return nil, err
		}
		m.ImageKey = &key
	}

	if err := s.repo.Create(ctx, m); err != nil {
		if m.ImageKey != nil {
			if derr := s.images.Delete(context.WithoutCancel(ctx), *m.ImageKey); derr != nil {
				s.logger.Warnw("failed to remove orphaned image", "key", *m.ImageKey, "error", derr)
			}
		}
		return nil, fmt.Errorf("save memory: %w", err)
	}
	return m, nil
}

func (s *MemoryService) buildMemory(ownerID string, in MemoryInput) (*model.Memory, error) {
	title, err := requiredText("title", in.Title, maxTitleLength)
	if err != nil {
		return nil, err
	}
	desc, err := requiredText("description", in.Description, maxDescriptionLength)
	if err != nil {
		return nil, err
	}
	mood, err := optionalText("mood", in.Mood, maxMoodLength)
	if err != nil {
		return nil, err
	}
	if mood != nil && !IsMood(*mood) {
		return nil, invalid("mood", "Select a mood from the list.")
	}
	location, err := optionalText("location", in.Location, maxLocationLength)
	if err != nil {
		return nil, err
	}
	occurredOn, err := optionalDay("occurredOn", in.OccurredOn)
	if err != nil {
		return nil, err
	}

	return &model.Memory{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: desc,
		Mood:        mood,
		Location:    location,
		OccurredOn:  occurredOn,
		CreatedAt:   s.clock.Now().UTC(),
	}, nil
}

func (s *MemoryService) uploadImage(ctx context.Context, ownerID string, img *ImageUpload) (string, error) {
	if s.images == nil {
		return "", ErrStorageDisabled
	}
	if img.Size <= 0 {
		return "", invalid("image", "Image file is empty.")
	}
	if img.Size > s.maxImageBytes {
		return "", invalid("image", fmt.Sprintf("Image must be %d MB or smaller.", s.maxImageBytes/(1024*1024)))
	}
	ct := strings.ToLower(strings.TrimSpace(img.ContentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	ext, ok := imageExtensions[ct]
	if !ok {
		return "", invalid("image", "Unsupported image type. Use JPEG, PNG, WEBP or HEIC.")
	}

	key := fmt.Sprintf("memories/%s/%s%s", ownerID, uuid.NewString(), ext)
	if err := s.images.Put(ctx, key, img.Body, img.Size, ct); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return key, nil
}

// Recent возвращает последние limit воспоминаний, новые первыми.
func (s *MemoryService) Recent(ctx context.Context, ownerID string, limit int) ([]model.Memory, error) {
	if limit <= 0 {
		return []model.Memory{}, nil
	}
	list, err := s.repo.ListRecent(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent memories: %w", err)
	}
	return list, nil
}

// Delete удаляет воспоминание владельца, затем (без гарантий) его фото.
func (s *MemoryService) Delete(ctx context.Context, ownerID, id string) error {
	m, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load memory: %w", err)
	}

	deleted, err := s.repo.DeleteOwned(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete memory: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	if m.ImageKey != nil && s.images != nil {
		if err := s.images.Delete(ctx, *m.ImageKey); err != nil {
			s.logger.Warnw("failed to remove memory image", "memory_id", id, "key", *m.ImageKey, "error", err)
		}
	}
	return nil
}

// ThumbnailURL возвращает подписанную ссылку на фото или "" если фото нет.
// Ошибка подписи не мешает отдать запись, поэтому только логируется.
func (s *MemoryService) ThumbnailURL(ctx context.Context, m *model.Memory) string {
	if m == nil || m.ImageKey == nil || s.images == nil {
		return ""
	}
	u, err := s.images.PresignGet(ctx, *m.ImageKey, ThumbnailTTL)
	if err != nil {
		s.logger.Warnw("failed to presign memory image", "memory_id", m.ID, "error", err)
		return ""
	}
	return u
}
