package handlers

import (
	"Nuremento/internal/config"
	"Nuremento/internal/middleware"
	"Nuremento/internal/model"
	"Nuremento/internal/service"
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	defaultRecentLimit = 3
	maxRecentLimit     = 12
)

// MemoryHandler - воспоминания и воспоминание дня.
type MemoryHandler struct {
	MemoryService *service.MemoryService
	DailyService  *service.DailyService
	Logger        *zap.SugaredLogger
	Config        *config.Config
}

func NewMemoryHandler(memoryService *service.MemoryService, dailyService *service.DailyService, logger *zap.SugaredLogger, cfg *config.Config) *MemoryHandler {
	return &MemoryHandler{MemoryService: memoryService, DailyService: dailyService, Logger: logger, Config: cfg}
}

type memoryRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Mood        *string `json:"mood,omitempty"`
	Location    *string `json:"location,omitempty"`
	OccurredOn  *string `json:"occurredOn,omitempty"`
}

type memoryDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Mood         *string   `json:"mood"`
	Location     *string   `json:"location"`
	OccurredOn   *string   `json:"occurredOn"`
	CreatedAt    time.Time `json:"createdAt"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
}

func (h *MemoryHandler) toDTO(ctx context.Context, m *model.Memory) *memoryDTO {
	if m == nil {
		return nil
	}
	dto := &memoryDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Mood:        m.Mood,
		Location:    m.Location,
		OccurredOn:  m.OccurredOn,
		CreatedAt:   m.CreatedAt,
	}
	if u := h.MemoryService.ThumbnailURL(ctx, m); u != "" {
		dto.ThumbnailURL = &u
	}
	return dto
}

// Daily - воспоминание дня (null, если воспоминаний нет)
func (h *MemoryHandler) Daily(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	m, err := h.DailyService.MemoryOfTheDay(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, h.Logger, "MemoryOfTheDay", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"memory": h.toDTO(r.Context(), m)})
}

// Recent - последние воспоминания, ?limit=1..12 (по умолчанию 3)
func (h *MemoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	list, err := h.MemoryService.Recent(r.Context(), ownerID, parseRecentLimit(r.URL.Query().Get("limit")))
	if err != nil {
		writeServiceError(w, h.Logger, "RecentMemories", err)
		return
	}

	out := make([]*memoryDTO, 0, len(list))
	for i := range list {
		out = append(out, h.toDTO(r.Context(), &list[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"memories": out})
}

func parseRecentLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultRecentLimit
	}
	if n < 1 {
		return 1
	}
	if n > maxRecentLimit {
		return maxRecentLimit
	}
	return n
}

// Create принимает JSON или multipart/form-data с полями metadata (JSON) и image (файл)
func (h *MemoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	var (
		req memoryRequest
		img *service.ImageUpload
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		// запас на поля формы сверх самого фото
		r.Body = http.MaxBytesReader(w, r.Body, h.Config.ImageMaxBytes()+1<<20)
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "Image is too large.", Field: "image"})
				return
			}
			h.Logger.Warnw("CreateMemory: invalid multipart form", "error", err)
			badRequest(w, "Invalid multipart form.")
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		if err := json.Unmarshal([]byte(r.FormValue("metadata")), &req); err != nil {
			h.Logger.Warnw("CreateMemory: invalid metadata", "error", err)
			badRequest(w, "Invalid metadata.")
			return
		}

		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			img = &service.ImageUpload{
				Body:        file,
				Size:        header.Size,
				ContentType: header.Header.Get("Content-Type"),
				FileName:    header.Filename,
			}
		case errors.Is(err, http.ErrMissingFile):
			// фото необязательно
		default:
			h.Logger.Warnw("CreateMemory: unreadable image part", "error", err)
			badRequest(w, "Invalid image.")
			return
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateMemory: invalid request body", "error", err)
		badRequest(w, "Invalid request body.")
		return
	}

	m, err := h.MemoryService.Create(r.Context(), ownerID, service.MemoryInput{
		Title:       req.Title,
		Description: req.Description,
		Mood:        req.Mood,
		Location:    req.Location,
		OccurredOn:  req.OccurredOn,
	}, img)
	if err != nil {
		writeServiceError(w, h.Logger, "CreateMemory", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"memory": h.toDTO(r.Context(), m)})
}

func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	if err := h.MemoryService.Delete(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.Logger, "DeleteMemory", err)
		return
	}
	writeOK(w)
}
