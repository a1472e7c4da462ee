package handlers

import (
	"Nuremento/internal/middleware"
	"Nuremento/internal/model"
	"Nuremento/internal/service"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LakeHandler - заметки «озера» и заметка дня.
type LakeHandler struct {
	LakeService  *service.LakeService
	DailyService *service.DailyService
	Logger       *zap.SugaredLogger
}

func NewLakeHandler(lakeService *service.LakeService, dailyService *service.DailyService, logger *zap.SugaredLogger) *LakeHandler {
	return &LakeHandler{LakeService: lakeService, DailyService: dailyService, Logger: logger}
}

type lakeNoteRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type lakeNoteDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func toLakeNoteDTO(n *model.LakeNote) *lakeNoteDTO {
	if n == nil {
		return nil
	}
	return &lakeNoteDTO{ID: n.ID, Title: n.Title, Message: n.Message, CreatedAt: n.CreatedAt}
}

func (h *LakeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	var req lakeNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateLakeNote: invalid request body", "error", err)
		badRequest(w, "Invalid request body.")
		return
	}

	n, err := h.LakeService.Create(r.Context(), ownerID, req.Title, req.Message)
	if err != nil {
		writeServiceError(w, h.Logger, "CreateLakeNote", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"note": toLakeNoteDTO(n)})
}

// Today - заметка дня; null, если сегодня уже выдавали или озеро пустое
func (h *LakeHandler) Today(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	n, err := h.DailyService.LakeNoteOfTheDay(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, h.Logger, "LakeNoteOfTheDay", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"note": toLakeNoteDTO(n)})
}

func (h *LakeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	if err := h.LakeService.Delete(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.Logger, "DeleteLakeNote", err)
		return
	}
	writeOK(w)
}
