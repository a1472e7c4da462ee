package handlers

import (
	"Nuremento/internal/middleware"
	"Nuremento/internal/service"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CapsuleHandler - HTTP-доступ к капсулам времени.
type CapsuleHandler struct {
	CapsuleService *service.CapsuleService
	Logger         *zap.SugaredLogger
}

func NewCapsuleHandler(capsuleService *service.CapsuleService, logger *zap.SugaredLogger) *CapsuleHandler {
	return &CapsuleHandler{CapsuleService: capsuleService, Logger: logger}
}

type createCapsuleRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	OpenOn  string `json:"openOn"`
}

type capsuleCreatedDTO struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	OpenOn string `json:"openOn"`
}

type capsuleSummaryDTO struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	OpenOn   string     `json:"openOn"`
	OpenedAt *time.Time `json:"openedAt"`
	Locked   bool       `json:"locked"`
}

type capsuleOpenedDTO struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Message  string     `json:"message"`
	OpenOn   string     `json:"openOn"`
	OpenedAt *time.Time `json:"openedAt"`
}

// Create создаёт капсулу
func (h *CapsuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	var req createCapsuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateCapsule: invalid request body", "error", err)
		badRequest(w, "Invalid request body.")
		return
	}

	c, err := h.CapsuleService.Create(r.Context(), ownerID, service.CreateCapsuleInput{
		Title:   req.Title,
		Message: req.Message,
		OpenOn:  req.OpenOn,
	})
	if err != nil {
		writeServiceError(w, h.Logger, "CreateCapsule", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"capsule": capsuleCreatedDTO{ID: c.ID, Title: c.Title, OpenOn: c.OpenOn},
	})
}

// List - капсулы владельца без текста сообщений
func (h *CapsuleHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	list, err := h.CapsuleService.List(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, h.Logger, "ListCapsules", err)
		return
	}

	out := make([]capsuleSummaryDTO, 0, len(list))
	for _, c := range list {
		out = append(out, capsuleSummaryDTO{ID: c.ID, Title: c.Title, OpenOn: c.OpenOn, OpenedAt: c.OpenedAt, Locked: c.Locked})
	}
	writeJSON(w, http.StatusOK, map[string]any{"capsules": out})
}

// Open отдаёт содержимое капсулы, если её дата наступила
func (h *CapsuleHandler) Open(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	c, err := h.CapsuleService.Open(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.Logger, "OpenCapsule", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"capsule": capsuleOpenedDTO{ID: c.ID, Title: c.Title, Message: c.Message, OpenOn: c.OpenOn, OpenedAt: c.OpenedAt},
	})
}

func (h *CapsuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerIDFromContext(r.Context())

	if err := h.CapsuleService.Delete(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.Logger, "DeleteCapsule", err)
		return
	}
	writeOK(w)
}
