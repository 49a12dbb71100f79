package http

import (
	"encoding/json"
	"net/http"

	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/internal/utils"
	"github.com/reenu-kutty/dear-diary/models"
)

func (h *Handler) analyzeEmotions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.AnalysisRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.analyzeEmotions").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	analyses, err := h.services.EmotionAnalysisService.AnalyzeRange(ctx, userID, req.StartDate, req.EndDate)
	if err != nil {
		log.Err(err).Str("func", "*Handler.analyzeEmotions").Msg("emotional analysis failed")
		http.Error(w, "emotional analysis failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.EmotionalAnalysisResponse{Analyses: analyses}, http.StatusOK)
}

func (h *Handler) analyzeThemes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.AnalysisRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.analyzeThemes").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	themes, err := h.services.ThemeAnalysisService.AnalyzeMonth(ctx, userID, req.StartDate, req.EndDate)
	if err != nil {
		log.Err(err).Str("func", "*Handler.analyzeThemes").Msg("theme analysis failed")
		http.Error(w, "theme analysis failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, themes, http.StatusOK)
}

func (h *Handler) clearEmotionCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.EmotionAnalysisService.ClearCache(ctx, userID); err != nil {
		log.Err(err).Str("func", "*Handler.clearEmotionCache").Msg("emotion cache clear failed")
		http.Error(w, "emotion cache clear failed", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearThemeCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.ThemeAnalysisService.ClearCache(ctx, userID); err != nil {
		log.Err(err).Str("func", "*Handler.clearThemeCache").Msg("theme cache clear failed")
		http.Error(w, "theme cache clear failed", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkCrisis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CrisisCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.checkCrisis").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	assessment := h.services.CrisisService.Assess(ctx, req.Title, req.Content)

	utils.WriteJSON(w, assessment, http.StatusOK)
}
