// Package improver содержит бизнес-логику улучшения текста через цепочку
// внешних моделей с последовательным перебором.
package improver

import (
	"context"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/writing-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/writing-assistant/internal/llm"
)

// CompletionClient описывает клиент генерации текста одной моделью.
type CompletionClient interface {
	// Complete выполняет один запрос генерации и возвращает ответ модели.
	Complete(ctx context.Context, model, systemPrompt, text string) (string, error)
}

// Service реализует перебор моделей в фиксированном порядке: каждой
// модели даётся ровно одна попытка, побеждает первый непустой результат.
type Service struct {
	client CompletionClient
	models []string
	log    *slog.Logger
}

// New создает новый Service с переданным клиентом и списком моделей.
func New(client CompletionClient, models []string, log *slog.Logger) *Service {
	return &Service{
		client: client,
		models: models,
		log:    log,
	}
}

// Improve возвращает исправленную версию текста. Ошибки моделей
// (rate limit, ошибка провайдера, недоступная модель) и пустые ответы
// гасятся для каждой модели отдельно с записью в лог; если все модели
// отработали впустую, возвращается исходный текст без изменений —
// вызывающему никогда не отдаётся ошибка.
func (s *Service) Improve(ctx context.Context, text, tone, language string) string {
	const op = "services.improver.Improve"
	log := s.log.With(slog.String("op", op))

	systemPrompt := llm.BuildEditorPrompt(tone, language)

	for _, model := range s.models {
		out, err := s.client.Complete(ctx, model, systemPrompt, text)
		if err != nil {
			log.Warn("model attempt failed", slog.String("model", model), sl.Err(err))
			continue
		}
		out = strings.TrimSpace(out)
		if out == "" {
			log.Warn("model returned empty result", slog.String("model", model))
			continue
		}
		log.Info("model attempt succeeded", slog.String("model", model))
		return out
	}

	log.Info("all models failed or returned empty, falling back to original text")
	return text
}
