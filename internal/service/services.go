package service

import (
	"github.com/reenu-kutty/dear-diary/internal/ai"
	"github.com/reenu-kutty/dear-diary/internal/config"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/internal/notify"
	"github.com/reenu-kutty/dear-diary/internal/store"
)

// Services bundles every application service for injection into the
// transport layer.
type Services struct {
	AuthService            AuthService
	EntryService           EntryService
	EmotionAnalysisService EmotionAnalysisService
	ThemeAnalysisService   ThemeAnalysisService
	CrisisService          CrisisService
	PromptService          PromptService
}

func NewServices(
	repositories *store.Repositories,
	completer ai.Completer,
	notifier notify.Notifier,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	crisisService := NewCrisisService(completer, logger)

	return &Services{
		AuthService:            NewAuthService(repositories.UserRepository, cfg.App, logger),
		EntryService:           NewEntryService(repositories, crisisService, notifier, logger),
		EmotionAnalysisService: NewEmotionService(repositories.EntryRepository, repositories.EmotionCacheRepository, completer, logger),
		ThemeAnalysisService:   NewThemeService(repositories.EntryRepository, repositories.ThemeCacheRepository, completer, logger),
		CrisisService:          crisisService,
		PromptService:          NewPromptService(repositories.EntryRepository, completer, logger),
	}
}
