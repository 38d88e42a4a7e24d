package services

import (
	"translate-bridge/internal/history"
	"translate-bridge/internal/translation_engine"
)

// Services holds all application services
type Services struct {
	TranslationService *translation_engine.TranslationService
	// History is nil when no database is configured.
	History            *history.Repository
}

// NewServices creates and initializes all services
func NewServices(translationService *translation_engine.TranslationService, historyRepo *history.Repository) *Services {
	return &Services{
		TranslationService: translationService,
		History:            historyRepo,
	}
}
