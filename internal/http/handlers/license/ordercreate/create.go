// Package ordercreate обрабатывает создание платёжных заказов.
package ordercreate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/writing-assistant/internal/http/response"
	"github.com/magabrotheeeer/writing-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/writing-assistant/internal/models"
	"github.com/magabrotheeeer/writing-assistant/internal/paymentprovider"
)

// Единственная ценовая точка: 499.00 INR в пайсах.
const (
	orderAmount   = 49900
	orderCurrency = "INR"
)

// ProviderClient определяет интерфейс для работы с платёжным провайдером.
type ProviderClient interface {
	CreateOrder(ctx context.Context, reqParams paymentprovider.CreateOrderRequest) (*paymentprovider.Order, error)
	KeyID() string
}

// LicenseService определяет интерфейс проверки бесплатного списка.
type LicenseService interface {
	IsFreeTier(email string) bool
}

// CreateOrderResponse представляет данные, необходимые клиенту для checkout.
type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// Handler обрабатывает запросы на создание платёжного заказа.
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
// @Summary Создать заказ
// @Description Создает заказ фиксированной суммы через Razorpay для последующей активации лицензии
// @Tags License
// @Accept  json
// @Produce  json
// @Param request body models.DummyCreateOrder true "Email пользователя"
// @Success 200 {object} CreateOrderResponse "Данные заказа для checkout"
// @Failure 400 {object} response.ErrorResponse "Email из бесплатного списка или некорректный запрос"
// @Failure 500 {object} response.ErrorResponse "Платёжный провайдер не настроен или недоступен"
// @Router /create_order [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.license.ordercreate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyCreateOrder
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

	if h.licenseService.IsFreeTier(req.Email) {
		log.Info("free-tier email does not need payment", slog.String("email", req.Email))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("free-tier email does not require payment"))
		return
	}

	if h.providerClient == nil {
		log.Error("payment provider is not configured")
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("payment provider is not configured"))
		return
	}

	orderReq := paymentprovider.CreateOrderRequest{
		Amount:   orderAmount,
		Currency: orderCurrency,
		Receipt:  "rcpt-" + uuid.NewString(),
	}

	order, err := h.providerClient.CreateOrder(r.Context(), orderReq)
	if err != nil {
		log.Error("failed to create order from provider", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("payment provider error"))
		return
	}

	log.Info("success to create order", slog.String("order_id", order.ID))
	render.JSON(w, r, CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    h.providerClient.KeyID(),
	})
}
