package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/reenu-kutty/dear-diary/internal/service"
	"github.com/reenu-kutty/dear-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyPrompt_Success(t *testing.T) {
	prompts := &mockPromptService{
		dailyPromptFn: func(_ context.Context, userID int64) (string, error) {
			assert.Equal(t, int64(7), userID)
			return "What felt easy today?", nil
		},
	}
	router := newTestRouter(t, &service.Services{PromptService: prompts})

	rec := doAuthed(t, router, http.MethodGet, "/api/prompts/daily", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DailyPromptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "What felt easy today?", resp.Question)
}

func TestDailyPrompt_StorageError(t *testing.T) {
	prompts := &mockPromptService{
		dailyPromptFn: func(_ context.Context, _ int64) (string, error) {
			return "", errors.New("db down")
		},
	}
	router := newTestRouter(t, &service.Services{PromptService: prompts})

	rec := doAuthed(t, router, http.MethodGet, "/api/prompts/daily", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
