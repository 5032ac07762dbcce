package story

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/de-tools/story-atlas/pkg/adapters"
	"github.com/de-tools/story-atlas/pkg/models/api"
	"github.com/de-tools/story-atlas/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	reports report.Service
}

func NewHandler(reports report.Service) *Handler {
	return &Handler{
		reports: reports,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, api.Health{
		Status:      "ok",
		RecordCount: h.reports.RecordCount(),
	})
}

func (h *Handler) GetStory(w http.ResponseWriter, r *http.Request) {
	s := h.reports.GetStory(r.Context())
	writeJSON(w, r, http.StatusOK, adapters.MapDomainStoryToApi(s))
}

func (h *Handler) GetScene(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	raw := chi.URLParam(r, "index")

	index, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "scene index must be an integer", http.StatusBadRequest)
		return
	}

	scene, err := h.reports.GetScene(ctx, index)
	if errors.Is(err, report.ErrSceneNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Int("index", index).Msg("failed to get scene")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapDomainSceneToApi(scene))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}
