// Package license содержит бизнес-логику лицензий: проверку статуса,
// выдачу и продление, а также список бесплатных email.
package license

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/writing-assistant/internal/lib/expiry"
	"github.com/magabrotheeeer/writing-assistant/internal/models"
)

// LicenseRepository определяет методы для работы с реестром лицензий.
type LicenseRepository interface {
	// Load возвращает весь реестр; проблемы с файлом дают пустой реестр.
	Load() map[string]models.LicenseRecord
	// Save переписывает реестр целиком.
	Save(records map[string]models.LicenseRecord) error
}

// Service реализует проверку и продление лицензий поверх файлового
// реестра. Email из бесплатного списка всегда активны и не проходят
// через оплату.
type Service struct {
	repo       LicenseRepository
	freeEmails map[string]struct{}
	log        *slog.Logger
}

// New создает новый Service. Список бесплатных email нормализуется
// один раз при старте и дальше не меняется.
func New(repo LicenseRepository, freeEmails []string, log *slog.Logger) *Service {
	free := make(map[string]struct{}, len(freeEmails))
	for _, email := range freeEmails {
		if normalized := Normalize(email); normalized != "" {
			free[normalized] = struct{}{}
		}
	}
	return &Service{
		repo:       repo,
		freeEmails: free,
		log:        log,
	}
}

// Normalize приводит email к каноническому виду перед любым поиском,
// сохранением или сравнением.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsFreeTier сообщает, входит ли email в бесплатный список. Единственная
// точка этой проверки для статуса, создания заказа и активации.
func (s *Service) IsFreeTier(email string) bool {
	_, ok := s.freeEmails[Normalize(email)]
	return ok
}

// Check возвращает статус лицензии. Бесплатные email активны независимо
// от содержимого реестра. Отсутствие записи — неактивна без даты;
// некорректная дата — неактивна, исходная строка возвращается как есть
// для диагностики. Лицензия с датой окончания, равной сегодняшней,
// ещё активна.
func (s *Service) Check(email string) models.LicenseStatus {
	normalized := Normalize(email)

	if s.IsFreeTier(normalized) {
		sentinel := expiry.Sentinel
		return models.LicenseStatus{Active: true, Expiry: &sentinel}
	}

	record, ok := s.repo.Load()[normalized]
	if !ok {
		return models.LicenseStatus{Active: false, Expiry: nil}
	}

	expiresAt, err := time.Parse(expiry.DateLayout, record.Expiry)
	if err != nil {
		raw := record.Expiry
		return models.LicenseStatus{Active: false, Expiry: &raw}
	}

	active := !expiresAt.Before(expiry.Today())
	return models.LicenseStatus{Active: active, Expiry: &record.Expiry}
}

// GrantOrExtend выдаёт или продлевает лицензию на months месяцев по
// 30 дней. Продление наслаивается на неистёкший остаток; истёкшая или
// отсутствующая лицензия отсчитывается от сегодняшнего дня. Для
// бесплатных email дата безусловно ставится в сентинельную — операция
// идемпотентна. Возвращает новую дату окончания.
func (s *Service) GrantOrExtend(email string, months int) (string, error) {
	const op = "services.license.GrantOrExtend"

	normalized := Normalize(email)
	records := s.repo.Load()

	var newExpiry string
	if s.IsFreeTier(normalized) {
		newExpiry = expiry.Sentinel
	} else {
		base := expiry.Today()
		if record, ok := records[normalized]; ok {
			if existing, err := time.Parse(expiry.DateLayout, record.Expiry); err == nil && !existing.Before(base) {
				base = existing
			}
		}
		newExpiry = expiry.Add(base, months).Format(expiry.DateLayout)
	}

	records[normalized] = models.LicenseRecord{Expiry: newExpiry}
	if err := s.repo.Save(records); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("license granted or extended",
		slog.String("email", normalized),
		slog.String("expiry", newExpiry))
	return newExpiry, nil
}
