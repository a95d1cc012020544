// Package activate обрабатывает активацию лицензии после оплаты.
package activate

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/writing-assistant/internal/http/response"
	"github.com/magabrotheeeer/writing-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/writing-assistant/internal/models"
)

// Сроки выдачи: оплаченная активация продлевает на месяц, бесплатный
// список получает длинную лицензию сразу.
const (
	paidMonths = 1
	freeMonths = 12
)

// ProviderClient определяет интерфейс проверки подписи платежа.
type ProviderClient interface {
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}

// LicenseService определяет интерфейс выдачи и продления лицензий.
type LicenseService interface {
	IsFreeTier(email string) bool
	GrantOrExtend(email string, months int) (string, error)
}

// ActivateResponse представляет результат активации лицензии.
type ActivateResponse struct {
	Success bool   `json:"success"`
	Expiry  string `json:"expiry"`
}

// Handler обрабатывает запросы на активацию лицензии.
type Handler struct {
	log            *slog.Logger        // Логгер для записи информации и ошибок
	providerClient ProviderClient      // Клиент для работы с провайдером, nil если провайдер не настроен
	licenseService LicenseService      // Сервис лицензий
	validate       *validator.Validate // Валидатор структуры входящих данных
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, providerClient ProviderClient, ls LicenseService) *Handler {
	return &Handler{
		log:            log,
		providerClient: providerClient,
		licenseService: ls,
		validate:       validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Активировать лицензию
// @Description Проверяет подпись платежа Razorpay и продлевает лицензию; бесплатный список активируется без проверки
// @Tags License
// @Accept  json
// @Produce  json
// @Param request body models.DummyActivate true "Email и идентификаторы платежа"
// @Success 200 {object} ActivateResponse "Лицензия активирована"
// @Failure 400 {object} response.ErrorResponse "Некорректная подпись платежа"
// @Failure 500 {object} response.ErrorResponse "Платёжный провайдер не настроен или ошибка записи"
// @Router /activate_license [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.license.activate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyActivate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	// Бесплатный список активируется сразу, без проверки подписи.
	if h.licenseService.IsFreeTier(req.Email) {
		expiry, err := h.licenseService.GrantOrExtend(req.Email, freeMonths)
		if err != nil {
			log.Error("failed to grant free-tier license", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save license"))
			return
		}
		log.Info("free-tier license activated", slog.String("email", req.Email))
		render.JSON(w, r, ActivateResponse{Success: true, Expiry: expiry})
		return
	}

	if h.providerClient == nil {
		log.Error("payment provider is not configured")
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("payment provider is not configured"))
		return
	}

	if !h.providerClient.VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature) {
		log.Error("invalid payment signature",
			slog.String("order_id", req.OrderID),
			slog.String("payment_id", req.PaymentID))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid payment signature"))
		return
	}

	expiry, err := h.licenseService.GrantOrExtend(req.Email, paidMonths)
	if err != nil {
		log.Error("failed to extend license", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save license"))
		return
	}

	log.Info("license activated",
		slog.String("email", req.Email),
		slog.String("expiry", expiry))
	render.JSON(w, r, ActivateResponse{Success: true, Expiry: expiry})
}
