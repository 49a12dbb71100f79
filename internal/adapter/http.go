package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/internal/utils"
	"github.com/reenu-kutty/dear-diary/models"
)

type httpServerAdapter struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL before building
// the underlying client.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address %q: %w", address, err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{
		client: client,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token)
}

// Register implements [ServerAdapter]. On success the bearer token is
// extracted from the Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var registered models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&registered).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return registered, nil
}

// Login implements [ServerAdapter]. On success the bearer token is extracted
// from the Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// CreateEntry implements [ServerAdapter].
func (h *httpServerAdapter) CreateEntry(ctx context.Context, req models.EntryCreateRequest) (models.EntryWriteResponse, error) {
	var result models.EntryWriteResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/entries/")
	if err != nil {
		return models.EntryWriteResponse{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntryWriteResponse{}, err
	}

	return result, nil
}

// ListEntries implements [ServerAdapter].
func (h *httpServerAdapter) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry

	request := h.authedRequest(ctx).SetResult(&entries)
	if filter.Search != "" {
		request.SetQueryParam("search", filter.Search)
	}
	if filter.FavoritesOnly {
		request.SetQueryParam("favorites", "true")
	}

	resp, err := request.Get("/api/entries/")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetEntry implements [ServerAdapter].
func (h *httpServerAdapter) GetEntry(ctx context.Context, entryID string) (models.JournalEntry, error) {
	var entry models.JournalEntry

	resp, err := h.authedRequest(ctx).
		SetResult(&entry).
		Get("/api/entries/" + url.PathEscape(entryID))
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("get entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.JournalEntry{}, err
	}

	return entry, nil
}

// UpdateEntry implements [ServerAdapter].
func (h *httpServerAdapter) UpdateEntry(ctx context.Context, entryID string, req models.EntryUpdateRequest) (models.EntryWriteResponse, error) {
	var result models.EntryWriteResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Put("/api/entries/" + url.PathEscape(entryID))
	if err != nil {
		return models.EntryWriteResponse{}, fmt.Errorf("update entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntryWriteResponse{}, err
	}

	return result, nil
}

// SetFavorite implements [ServerAdapter].
func (h *httpServerAdapter) SetFavorite(ctx context.Context, entryID string, favorite bool) (models.JournalEntry, error) {
	var entry models.JournalEntry

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FavoriteRequest{IsFavorite: favorite}).
		SetResult(&entry).
		Put("/api/entries/" + url.PathEscape(entryID) + "/favorite")
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.JournalEntry{}, err
	}

	return entry, nil
}

// DeleteEntry implements [ServerAdapter].
func (h *httpServerAdapter) DeleteEntry(ctx context.Context, entryID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/entries/" + url.PathEscape(entryID))
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}

// AnalyzeEmotions implements [ServerAdapter].
func (h *httpServerAdapter) AnalyzeEmotions(ctx context.Context, start, end time.Time) ([]models.DailyEmotionRecord, error) {
	var result models.EmotionalAnalysisResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AnalysisRangeRequest{StartDate: start, EndDate: end}).
		SetResult(&result).
		Post("/api/analysis/emotions")
	if err != nil {
		return nil, fmt.Errorf("emotion analysis request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Analyses, nil
}

// AnalyzeThemes implements [ServerAdapter].
func (h *httpServerAdapter) AnalyzeThemes(ctx context.Context, start, end time.Time) (models.MonthlyThemes, error) {
	var result models.MonthlyThemes

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AnalysisRangeRequest{StartDate: start, EndDate: end}).
		SetResult(&result).
		Post("/api/analysis/themes")
	if err != nil {
		return models.MonthlyThemes{}, fmt.Errorf("theme analysis request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MonthlyThemes{}, err
	}

	return result, nil
}

// ClearEmotionCache implements [ServerAdapter].
func (h *httpServerAdapter) ClearEmotionCache(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/analysis/emotions/cache")
	if err != nil {
		return fmt.Errorf("emotion cache clear request: %w", err)
	}

	return mapHTTPError(resp)
}

// ClearThemeCache implements [ServerAdapter].
func (h *httpServerAdapter) ClearThemeCache(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/analysis/themes/cache")
	if err != nil {
		return fmt.Errorf("theme cache clear request: %w", err)
	}

	return mapHTTPError(resp)
}

// CheckCrisis implements [ServerAdapter].
func (h *httpServerAdapter) CheckCrisis(ctx context.Context, title, content string) (models.CrisisAssessment, error) {
	var result models.CrisisAssessment

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CrisisCheckRequest{Title: title, Content: content}).
		SetResult(&result).
		Post("/api/analysis/crisis")
	if err != nil {
		return models.CrisisAssessment{}, fmt.Errorf("crisis check request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CrisisAssessment{}, err
	}

	return result, nil
}

// DailyPrompt implements [ServerAdapter].
func (h *httpServerAdapter) DailyPrompt(ctx context.Context) (string, error) {
	var result models.DailyPromptResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/prompts/daily")
	if err != nil {
		return "", fmt.Errorf("daily prompt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Question, nil
}

// SetEmergencyContact implements [ServerAdapter].
func (h *httpServerAdapter) SetEmergencyContact(ctx context.Context, email string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EmergencyContactRequest{Email: email}).
		Put("/api/user/emergency-contact")
	if err != nil {
		return fmt.Errorf("emergency contact request: %w", err)
	}

	return mapHTTPError(resp)
}

// ServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
