package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/internal/notify"
	"github.com/reenu-kutty/dear-diary/internal/store"
	"github.com/reenu-kutty/dear-diary/internal/utils"
	"github.com/reenu-kutty/dear-diary/models"
)

// entryService is the concrete implementation of EntryService.
//
// It is the single writer of journal entries and therefore the single owner
// of cache coherence: every create, update, and delete drops the emotion
// record for the entry's UTC day and the theme blob for its month,
// unconditionally, before the caller sees the result. Saved text is also
// screened for crisis indicators; screening and alerting run as a side
// channel and never fail the write.
type entryService struct {
	entryRepository store.EntryRepository
	emotionCache    store.EmotionCacheRepository
	themeCache      store.ThemeCacheRepository
	userRepository  store.UserRepository
	crisisService   CrisisService
	notifier        notify.Notifier
	idGenerator     *utils.UUIDGenerator
	logger          *logger.Logger
}

// NewEntryService constructs an EntryService from its collaborators.
func NewEntryService(
	repositories *store.Repositories,
	crisisService CrisisService,
	notifier notify.Notifier,
	logger *logger.Logger,
) EntryService {
	return &entryService{
		entryRepository: repositories.EntryRepository,
		emotionCache:    repositories.EmotionCacheRepository,
		themeCache:      repositories.ThemeCacheRepository,
		userRepository:  repositories.UserRepository,
		crisisService:   crisisService,
		notifier:        notifier,
		idGenerator:     utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// CreateEntry persists a new journal entry, invalidates the derived caches
// for its day and month, and screens the text for crisis indicators.
//
// Returns ErrValidationEmptyContent when the content is blank.
func (s *entryService) CreateEntry(ctx context.Context, userID int64, req models.EntryCreateRequest) (models.EntryWriteResponse, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.Content) == "" {
		return models.EntryWriteResponse{}, ErrValidationEmptyContent
	}

	entry, err := s.entryRepository.CreateEntry(ctx, models.JournalEntry{
		ID:      s.idGenerator.Generate(),
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Prompt:  req.Prompt,
	})
	if err != nil {
		log.Err(err).
			Str("func", "*entryService.CreateEntry").
			Int64("user_id", userID).
			Msg("entry creation failed")
		return models.EntryWriteResponse{}, fmt.Errorf("entry creation failed: %w", err)
	}

	s.invalidateCaches(ctx, userID, entry.CreatedAt)
	assessment := s.screenEntry(ctx, userID, entry)

	return models.EntryWriteResponse{Entry: entry, Crisis: assessment}, nil
}

// GetEntry retrieves a single entry owned by userID.
func (s *entryService) GetEntry(ctx context.Context, userID int64, entryID string) (models.JournalEntry, error) {
	entry, err := s.entryRepository.GetEntry(ctx, userID, entryID)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("entry fetch failed: %w", err)
	}

	return entry, nil
}

// ListEntries retrieves the user's entries newest first, narrowed by the
// filter.
func (s *entryService) ListEntries(ctx context.Context, userID int64, filter models.EntryFilter) ([]models.JournalEntry, error) {
	entries, err := s.entryRepository.ListEntries(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("entry listing failed: %w", err)
	}

	return entries, nil
}

// UpdateEntry rewrites an entry's title and content, invalidates the caches
// for the entry's original day and month, and re-screens the new text.
//
// The entry keeps its creation timestamp, so the invalidated day is the day
// the entry has always belonged to.
func (s *entryService) UpdateEntry(ctx context.Context, userID int64, entryID string, req models.EntryUpdateRequest) (models.EntryWriteResponse, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.Content) == "" {
		return models.EntryWriteResponse{}, ErrValidationEmptyContent
	}

	entry, err := s.entryRepository.UpdateEntry(ctx, userID, entryID, req.Title, req.Content)
	if err != nil {
		log.Err(err).
			Str("func", "*entryService.UpdateEntry").
			Int64("user_id", userID).
			Str("entry_id", entryID).
			Msg("entry update failed")
		return models.EntryWriteResponse{}, fmt.Errorf("entry update failed: %w", err)
	}

	s.invalidateCaches(ctx, userID, entry.CreatedAt)
	assessment := s.screenEntry(ctx, userID, entry)

	return models.EntryWriteResponse{Entry: entry, Crisis: assessment}, nil
}

// SetFavorite toggles the favorite flag. Favoriting does not change the
// entry's text or date, so the derived caches stay valid.
func (s *entryService) SetFavorite(ctx context.Context, userID int64, entryID string, favorite bool) (models.JournalEntry, error) {
	entry, err := s.entryRepository.SetFavorite(ctx, userID, entryID, favorite)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("favorite update failed: %w", err)
	}

	return entry, nil
}

// DeleteEntry removes an entry and invalidates the caches for the day and
// month it belonged to.
func (s *entryService) DeleteEntry(ctx context.Context, userID int64, entryID string) error {
	log := logger.FromContext(ctx)

	createdAt, err := s.entryRepository.DeleteEntry(ctx, userID, entryID)
	if err != nil {
		log.Err(err).
			Str("func", "*entryService.DeleteEntry").
			Int64("user_id", userID).
			Str("entry_id", entryID).
			Msg("entry deletion failed")
		return fmt.Errorf("entry deletion failed: %w", err)
	}

	s.invalidateCaches(ctx, userID, createdAt)

	return nil
}

// invalidateCaches drops the emotion record for createdAt's UTC day and the
// theme blob for its month. Failures are logged and swallowed: the freshness
// fingerprint catches a survived stale row on the next read, so a failed
// delete costs one redundant regeneration, never a wrong answer.
func (s *entryService) invalidateCaches(ctx context.Context, userID int64, createdAt time.Time) {
	log := logger.FromContext(ctx)

	day := createdAt.UTC().Truncate(24 * time.Hour)
	year, month, _ := createdAt.UTC().Date()

	if err := s.emotionCache.Delete(ctx, userID, day); err != nil {
		log.Err(err).
			Str("func", "*entryService.invalidateCaches").
			Int64("user_id", userID).
			Time("day", day).
			Msg("emotion cache invalidation failed")
	}

	if err := s.themeCache.Delete(ctx, userID, year, month); err != nil {
		log.Err(err).
			Str("func", "*entryService.invalidateCaches").
			Int64("user_id", userID).
			Int("year", year).
			Int("month", int(month)).
			Msg("theme cache invalidation failed")
	}
}

// screenEntry runs the crisis assessment for a just-saved entry and alerts
// the user's emergency contact on a high-severity hit. Both steps are best
// effort; the entry is already saved by the time this runs.
func (s *entryService) screenEntry(ctx context.Context, userID int64, entry models.JournalEntry) *models.CrisisAssessment {
	log := logger.FromContext(ctx)

	assessment := s.crisisService.Assess(ctx, entry.Title, entry.Content)

	if assessment.IsCrisis && assessment.Severity == models.SeverityHigh {
		log.Warn().
			Int64("user_id", userID).
			Str("entry_id", entry.ID).
			Int("confidence", assessment.Confidence).
			Msg("high-severity crisis assessment on saved entry")
		s.alertEmergencyContact(ctx, userID, entry, assessment)
	}

	return &assessment
}

func (s *entryService) alertEmergencyContact(ctx context.Context, userID int64, entry models.JournalEntry, assessment models.CrisisAssessment) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*entryService.alertEmergencyContact").
			Int64("user_id", userID).
			Msg("user lookup for crisis alert failed")
		return
	}

	if user.EmergencyContactEmail == "" {
		log.Warn().
			Int64("user_id", userID).
			Msg("high-severity crisis assessment but no emergency contact registered")
		return
	}

	alert := notify.Alert{
		ContactEmail:       user.EmergencyContactEmail,
		EntryTitle:         entry.Title,
		EntryContent:       entry.Content,
		DetectedIndicators: assessment.DetectedIndicators,
	}
	if err := s.notifier.NotifyEmergencyContact(ctx, alert); err != nil {
		log.Err(err).
			Str("func", "*entryService.alertEmergencyContact").
			Int64("user_id", userID).
			Msg("crisis alert delivery failed")
	}
}
