package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/internal/utils"
	"github.com/reenu-kutty/dear-diary/models"
)

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.EntryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.EntryService.CreateEntry(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("entry creation failed")
		http.Error(w, "entry creation failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	filter := models.EntryFilter{
		Search:        r.URL.Query().Get("search"),
		FavoritesOnly: r.URL.Query().Get("favorites") == "true",
	}

	entries, err := h.services.EntryService.ListEntries(ctx, userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listEntries").Msg("entry listing failed")
		http.Error(w, "entry listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entry, err := h.services.EntryService.GetEntry(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getEntry").Msg("entry fetch failed")
		http.Error(w, "entry fetch failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.EntryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.EntryService.UpdateEntry(ctx, userID, chi.URLParam(r, "id"), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("entry update failed")
		http.Error(w, "entry update failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) setFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.setFavorite").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	entry, err := h.services.EntryService.SetFavorite(ctx, userID, chi.URLParam(r, "id"), req.IsFavorite)
	if err != nil {
		log.Err(err).Str("func", "*Handler.setFavorite").Msg("favorite update failed")
		http.Error(w, "favorite update failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.EntryService.DeleteEntry(ctx, userID, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.deleteEntry").Msg("entry deletion failed")
		http.Error(w, "entry deletion failed", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
