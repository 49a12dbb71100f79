package store

import (
	"github.com/reenu-kutty/dear-diary/internal/logger"
)

// Repositories bundles every repository backed by the shared database
// connection for injection into the service layer.
type Repositories struct {
	UserRepository         UserRepository
	EntryRepository        EntryRepository
	EmotionCacheRepository EmotionCacheRepository
	ThemeCacheRepository   ThemeCacheRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db, logger),
		EntryRepository:        NewEntryRepository(db, logger),
		EmotionCacheRepository: NewEmotionCacheRepository(db, logger),
		ThemeCacheRepository:   NewThemeCacheRepository(db, logger),
	}
}
