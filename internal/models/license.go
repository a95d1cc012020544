// Package models содержит доменные структуры для лицензий,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// LicenseRecord представляет собой запись лицензии в файле-хранилище.
// Дата окончания хранится строкой в формате 2006-01-02; запись с
// некорректной датой трактуется как неактивная лицензия.
type LicenseRecord struct {
	Expiry string `json:"expiry"` // Дата окончания лицензии
}

// LicenseStatus описывает результат проверки лицензии.
// Поле Expiry равно nil, если записи нет; для некорректной записи
// возвращается исходная строка даты как есть.
type LicenseStatus struct {
	Active bool    `json:"active"`
	Expiry *string `json:"expiry"`
}

// DummyImprove используется для приёма запроса на улучшение текста.
// Текст может быть пустым, tone и language необязательны —
// значения по умолчанию подставляет обработчик.
type DummyImprove struct {
	Text     string `json:"text"`
	Tone     string `json:"tone,omitempty"`
	Language string `json:"language,omitempty"`
}

// DummyCreateOrder используется для приёма запроса на создание платежа.
type DummyCreateOrder struct {
	Email string `json:"email" validate:"required,email"`
}

// DummyActivate используется для приёма запроса на активацию лицензии.
// Поля платежа необязательны: для email из бесплатного списка
// активация проходит без проверки подписи.
type DummyActivate struct {
	Email     string `json:"email" validate:"required,email"`
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}
