package license

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/writing-assistant/internal/lib/expiry"
	"github.com/magabrotheeeer/writing-assistant/internal/models"
)

// fakeRepo реализует интерфейс license.LicenseRepository в памяти.
type fakeRepo struct {
	records map[string]models.LicenseRecord
	saveErr error
	saves   int
}

func (f *fakeRepo) Load() map[string]models.LicenseRecord {
	out := make(map[string]models.LicenseRecord, len(f.records))
	for k, v := range f.records {
		out[k] = v
	}
	return out
}

func (f *fakeRepo) Save(records map[string]models.LicenseRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.records = records
	return nil
}

func newTestService(repo *fakeRepo, freeEmails []string) *Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(repo, freeEmails, logger)
}

func today() time.Time { return expiry.Today() }

func TestCheck_NormalizationIsIdempotent(t *testing.T) {
	repo := &fakeRepo{records: map[string]models.LicenseRecord{
		"foo@bar.com": {Expiry: today().AddDate(0, 0, 5).Format(expiry.DateLayout)},
	}}
	svc := newTestService(repo, nil)

	got := svc.Check("Foo@Bar.com ")
	want := svc.Check("foo@bar.com")

	assert.Equal(t, want, got)
	assert.True(t, got.Active)
}

func TestCheck_FreeTierIgnoresLedger(t *testing.T) {
	tests := []struct {
		name    string
		records map[string]models.LicenseRecord
	}{
		{name: "пустой реестр", records: map[string]models.LicenseRecord{}},
		{
			name: "просроченная запись в реестре",
			records: map[string]models.LicenseRecord{
				"vip@example.com": {Expiry: "2000-01-01"},
			},
		},
		{
			name: "мусорная дата в реестре",
			records: map[string]models.LicenseRecord{
				"vip@example.com": {Expiry: "not-a-date"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeRepo{records: tt.records}, []string{" VIP@example.com "})

			status := svc.Check("vip@example.com")

			assert.True(t, status.Active)
			require.NotNil(t, status.Expiry)
			assert.Equal(t, expiry.Sentinel, *status.Expiry)
		})
	}
}

func TestCheck_StatusTable(t *testing.T) {
	todayStr := today().Format(expiry.DateLayout)
	yesterdayStr := today().AddDate(0, 0, -1).Format(expiry.DateLayout)

	tests := []struct {
		name       string
		records    map[string]models.LicenseRecord
		email      string
		wantActive bool
		wantExpiry *string
	}{
		{
			name:       "записи нет — неактивна без даты",
			records:    map[string]models.LicenseRecord{},
			email:      "nobody@example.com",
			wantActive: false,
			wantExpiry: nil,
		},
		{
			name: "дата окончания сегодня — ещё активна",
			records: map[string]models.LicenseRecord{
				"user@example.com": {Expiry: todayStr},
			},
			email:      "user@example.com",
			wantActive: true,
			wantExpiry: &todayStr,
		},
		{
			name: "дата окончания вчера — неактивна",
			records: map[string]models.LicenseRecord{
				"user@example.com": {Expiry: yesterdayStr},
			},
			email:      "user@example.com",
			wantActive: false,
			wantExpiry: &yesterdayStr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeRepo{records: tt.records}, nil)

			status := svc.Check(tt.email)

			assert.Equal(t, tt.wantActive, status.Active)
			if tt.wantExpiry == nil {
				assert.Nil(t, status.Expiry)
			} else {
				require.NotNil(t, status.Expiry)
				assert.Equal(t, *tt.wantExpiry, *status.Expiry)
			}
		})
	}
}

func TestCheck_MalformedExpirySurfacedRaw(t *testing.T) {
	repo := &fakeRepo{records: map[string]models.LicenseRecord{
		"user@example.com": {Expiry: "31/12/2026"},
	}}
	svc := newTestService(repo, nil)

	status := svc.Check("user@example.com")

	assert.False(t, status.Active)
	require.NotNil(t, status.Expiry)
	assert.Equal(t, "31/12/2026", *status.Expiry)
}

func TestGrantOrExtend_StacksOnUnexpiredRemainder(t *testing.T) {
	existing := today().AddDate(0, 0, 10)
	repo := &fakeRepo{records: map[string]models.LicenseRecord{
		"user@example.com": {Expiry: existing.Format(expiry.DateLayout)},
	}}
	svc := newTestService(repo, nil)

	got, err := svc.GrantOrExtend("user@example.com", 1)

	require.NoError(t, err)
	assert.Equal(t, existing.AddDate(0, 0, 30).Format(expiry.DateLayout), got)
}

func TestGrantOrExtend_ExpiredResetsBaseToToday(t *testing.T) {
	repo := &fakeRepo{records: map[string]models.LicenseRecord{
		"user@example.com": {Expiry: today().AddDate(0, 0, -5).Format(expiry.DateLayout)},
	}}
	svc := newTestService(repo, nil)

	got, err := svc.GrantOrExtend("user@example.com", 1)

	require.NoError(t, err)
	assert.Equal(t, today().AddDate(0, 0, 30).Format(expiry.DateLayout), got)
}

func TestGrantOrExtend_AbsentStartsFromToday(t *testing.T) {
	repo := &fakeRepo{records: map[string]models.LicenseRecord{}}
	svc := newTestService(repo, nil)

	got, err := svc.GrantOrExtend("New@Example.com", 12)

	require.NoError(t, err)
	assert.Equal(t, today().AddDate(0, 0, 360).Format(expiry.DateLayout), got)
	assert.Contains(t, repo.records, "new@example.com")
}

func TestGrantOrExtend_FreeTierSetsSentinelIdempotently(t *testing.T) {
	repo := &fakeRepo{records: map[string]models.LicenseRecord{}}
	svc := newTestService(repo, []string{"vip@example.com"})

	first, err := svc.GrantOrExtend("vip@example.com", 1)
	require.NoError(t, err)
	second, err := svc.GrantOrExtend("vip@example.com", 12)
	require.NoError(t, err)

	assert.Equal(t, expiry.Sentinel, first)
	assert.Equal(t, expiry.Sentinel, second)
}

func TestGrantOrExtend_SaveErrorPropagates(t *testing.T) {
	repo := &fakeRepo{
		records: map[string]models.LicenseRecord{},
		saveErr: errors.New("disk full"),
	}
	svc := newTestService(repo, nil)

	_, err := svc.GrantOrExtend("user@example.com", 1)

	assert.Error(t, err)
}
