package handler

import (
	"github.com/reenu-kutty/dear-diary/internal/config"
	"github.com/reenu-kutty/dear-diary/internal/handler/http"
	"github.com/reenu-kutty/dear-diary/internal/logger"
	"github.com/reenu-kutty/dear-diary/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App.Version, logger),
	}, nil
}
