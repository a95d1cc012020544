package paymentprovider

// CreateOrderRequest представляет запрос на создание заказа.
type CreateOrderRequest struct {
	Amount   int    `json:"amount"`   // сумма в минимальных единицах (пайсы)
	Currency string `json:"currency"` // валюта, например "INR"
	Receipt  string `json:"receipt"`  // внутренний идентификатор чека
}

// Order представляет ответ на создание заказа.
type Order struct {
	ID        string `json:"id"`     // ID заказа в Razorpay
	Amount    int    `json:"amount"` // сумма
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`     // статус заказа, например "created"
	CreatedAt int64  `json:"created_at"` // unix-время создания
}
