package http

import (
	"net/http"

	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/internal/utils"
	"github.com/reenu-kutty/dear-diary/models"
)

func (h *Handler) dailyPrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	question, err := h.services.PromptService.DailyPrompt(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.dailyPrompt").Msg("prompt generation failed")
		http.Error(w, "prompt generation failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DailyPromptResponse{Question: question}, http.StatusOK)
}
