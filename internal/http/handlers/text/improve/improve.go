// Package improve реализует HTTP-обработчик улучшения текста.
//
// Handler принимает JSON-запрос с текстом и необязательными tone/language,
// подставляет значения по умолчанию и вызывает цепочку моделей через сервис.
// Сервис работает по принципу fail-open, поэтому обработчик всегда отвечает
// успехом с каким-то текстом.
package improve

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/writing-assistant/internal/http/response"
	"github.com/magabrotheeeer/writing-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/writing-assistant/internal/models"
)

// Значения по умолчанию для необязательных полей запроса.
const (
	DefaultTone     = "neutral professional"
	DefaultLanguage = "en"
)

// Service описывает интерфейс бизнес-логики улучшения текста.
type Service interface {
	Improve(ctx context.Context, text, tone, language string) string
}

// ImproveResponse представляет ответ с улучшенным текстом.
type ImproveResponse struct {
	ImprovedText string `json:"improved_text"`
}

// Handler обрабатывает запросы на улучшение текста.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис цепочки моделей
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Улучшить текст
// @Description Исправляет орфографию, грамматику и пунктуацию через цепочку внешних моделей
// @Tags Text
// @Accept  json
// @Produce  json
// @Param request body models.DummyImprove true "Текст и необязательные tone/language"
// @Success 200 {object} ImproveResponse "Улучшенный текст"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Router /improve_text [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.text.improve"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyImprove
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	tone := req.Tone
	if tone == "" {
		tone = DefaultTone
	}
	language := req.Language
	if language == "" {
		language = DefaultLanguage
	}

	improved := h.service.Improve(r.Context(), req.Text, tone, language)

	log.Info("text improvement finished")
	render.JSON(w, r, ImproveResponse{ImprovedText: improved})
}
