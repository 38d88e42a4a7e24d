package translation_engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"translate-bridge/internal/chunker"
	"translate-bridge/internal/languages"
)

// TranslatorProviderInterface defines the methods required for translation providers
type TranslatorProviderInterface interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Recorder is notified about every successful translation
type Recorder interface {
	Record(ctx context.Context, result *Result) error
}

// ValidationError is a request the engine refuses to translate
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Result is a completed translation
type Result struct {
	Input          string
	Translated     string
	Method         languages.Method
	SourceLanguage languages.Language
	TargetLanguage languages.Language
	Duration       time.Duration
}

// TranslationService translates text between the supported languages
type TranslationService struct {
	logger    *zap.Logger
	provider  TranslatorProviderInterface
	recorder  Recorder
	chunkSize int
}

// NewTranslationService creates a new instance of TranslationService.
// recorder may be nil.
func NewTranslationService(logger *zap.Logger, provider TranslatorProviderInterface, recorder Recorder) *TranslationService {
	return &TranslationService{
		logger:    logger,
		provider:  provider,
		recorder:  recorder,
		chunkSize: chunker.DefaultMaxRunes,
	}
}

// Translate validates the request, routes the language pair and translates text
func (s *TranslationService) Translate(ctx context.Context, text, sourceLang, targetLang string) (*Result, error) {
	start := time.Now()

	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Message: "text must not be empty"}
	}
	if strings.TrimSpace(sourceLang) == "" || strings.TrimSpace(targetLang) == "" {
		return nil, &ValidationError{Message: "source and target language are required"}
	}

	source, ok := languages.Lookup(sourceLang)
	if !ok {
		return nil, &ValidationError{Message: fmt.Sprintf("unsupported source language: %s", languages.Normalize(sourceLang))}
	}
	target, ok := languages.Lookup(targetLang)
	if !ok {
		return nil, &ValidationError{Message: fmt.Sprintf("unsupported target language: %s", languages.Normalize(targetLang))}
	}

	route, err := languages.RouteFor(source.Code, target.Code)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	s.logger.Info("translating text",
		zap.String("source_language", source.Code),
		zap.String("target_language", target.Code),
		zap.String("method", string(route.Method)),
		zap.Int("text_length", len(text)),
	)

	translated := text
	for i, step := range route.Steps {
		translated, err = s.translateStep(ctx, translated, step)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s -> %s) failed: %w", i+1, step.Source, step.Target, err)
		}
		if route.Method == languages.MethodBridge && i < len(route.Steps)-1 {
			s.logger.Debug("intermediate translation", zap.String("language", step.Target), zap.String("text", translated))
		}
	}

	result := &Result{
		Input:          text,
		Translated:     translated,
		Method:         route.Method,
		SourceLanguage: source,
		TargetLanguage: target,
		Duration:       time.Since(start),
	}

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, result); err != nil {
			s.logger.Warn("failed to record translation", zap.Error(err))
		}
	}

	s.logger.Info("translation completed", zap.Duration("duration", result.Duration))
	return result, nil
}

func (s *TranslationService) translateStep(ctx context.Context, text string, step languages.Step) (string, error) {
	chunks := chunker.Split(text, s.chunkSize)
	out := make([]string, 0, len(chunks))

	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		translated, err := s.provider.Complete(ctx, buildPrompt(chunk, step.Source, step.Target))
		if err != nil {
			return "", err
		}
		translated = strings.TrimSpace(translated)
		if translated == "" {
			return "", errors.New("provider returned an empty translation")
		}
		out = append(out, translated)
	}

	return chunker.Join(out), nil
}

func buildPrompt(text, source, target string) string {
	sourceName, targetName := languageName(source), languageName(target)

	b := strings.Builder{}
	b.WriteString("You are a professional translator.\n")
	b.WriteString(fmt.Sprintf("Source language: %s\n", sourceName))
	b.WriteString(fmt.Sprintf("Target language: %s\n", targetName))
	b.WriteString("Translate the following SOURCE_TEXT. Reply with the translated text only, without quotes, notes or explanations.\n")
	b.WriteString("SOURCE_TEXT:\n")
	b.WriteString(text)
	return b.String()
}

var englishNames = map[string]string{
	"tr": "Turkish",
	"en": "English",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
}

func languageName(code string) string {
	if name, ok := englishNames[code]; ok {
		return fmt.Sprintf("%s (%s)", name, code)
	}
	return code
}
