// Package expiry содержит арифметику дат для лицензий: формат хранения,
// сентинельную "вечную" дату и продление по упрощённым месяцам.
package expiry

import (
	"time"
)

// DateLayout формат хранения даты окончания лицензии.
const DateLayout = "2006-01-02"

// Sentinel дата окончания для бесплатных лицензий — на практике "без срока".
const Sentinel = "2099-12-31"

// Today возвращает сегодняшнюю дату в UTC с точностью до дня.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Add продлевает дату на months месяцев по фиксированной схеме 30 дней
// за месяц. Календарная арифметика здесь не используется: от ровных
// 30-дневных периодов зависят даты, которые видит пользователь.
func Add(base time.Time, months int) time.Time {
	return base.AddDate(0, 0, months*30)
}
