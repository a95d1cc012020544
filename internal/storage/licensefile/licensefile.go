// Package licensefile реализует файловое хранилище лицензий: один
// JSON-документ вида {"email": {"expiry": "2006-01-02"}} по фиксированному
// пути. Каждое чтение загружает файл заново, каждая запись переписывает
// файл целиком. Взаимного исключения между запросами нет — при
// конкурирующих записях побеждает последняя, это принятое ограничение
// для малонагруженного однопроцессного развёртывания.
package licensefile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/magabrotheeeer/writing-assistant/internal/models"
)

// Storage хранит путь к файлу с лицензиями.
type Storage struct {
	path string
}

// New создает новое файловое хранилище по указанному пути.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Load читает весь файл лицензий. Отсутствующий, нечитаемый или
// повреждённый файл трактуется как пустой реестр: проверка лицензии
// должна оставаться доступной, а не падать из-за состояния файла.
func (s *Storage) Load() map[string]models.LicenseRecord {
	records := make(map[string]models.LicenseRecord)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return records
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return make(map[string]models.LicenseRecord)
	}
	return records
}

// Save переписывает файл лицензий целиком. Ошибки записи поднимаются
// наверх как есть.
func (s *Storage) Save(records map[string]models.LicenseRecord) error {
	const op = "storage.licensefile.Save"

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
