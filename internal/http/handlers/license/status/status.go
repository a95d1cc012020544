// Package status реализует HTTP-обработчик проверки статуса лицензии.
//
// Handler извлекает email из query-параметра, нормализует его в сервисе
// и возвращает флаг активности вместе с датой окончания (или null).
package status

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/writing-assistant/internal/http/response"
	"github.com/magabrotheeeer/writing-assistant/internal/models"
)

// Service описывает интерфейс бизнес-логики проверки лицензии.
type Service interface {
	Check(email string) models.LicenseStatus
}

// Handler обрабатывает запросы на проверку статуса лицензии.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис лицензий
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статус лицензии
// @Description Возвращает активность лицензии и дату окончания для email
// @Tags License
// @Produce  json
// @Param email query string true "Email пользователя"
// @Success 200 {object} models.LicenseStatus "Статус лицензии"
// @Failure 400 {object} response.ErrorResponse "Не передан email"
// @Router /license_status [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.license.status"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get("email")
	if email == "" {
		log.Error("email query parameter is missing")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("email is required"))
		return
	}

	licenseStatus := h.service.Check(email)

	log.Info("license status checked", slog.Bool("active", licenseStatus.Active))
	render.JSON(w, r, licenseStatus)
}
