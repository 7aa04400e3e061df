package payconfig

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payconfig"
)

// stubPayConfigRepository round-trips bundles through JSON the way the
// postgres implementation does, so partial documents overlay defaults.
type stubPayConfigRepository struct {
	docs map[string]json.RawMessage
}

func newStubPayConfigRepository() *stubPayConfigRepository {
	return &stubPayConfigRepository{docs: make(map[string]json.RawMessage)}
}

func (s *stubPayConfigRepository) Get(ctx context.Context, name string, out any) (bool, error) {
	doc, ok := s.docs[name]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(doc, out)
}

func (s *stubPayConfigRepository) Set(ctx context.Context, name string, bundle any) error {
	doc, err := json.Marshal(bundle)
	if err != nil {
		return err
	}
	s.docs[name] = doc
	return nil
}

func TestGetAllServesDefaults(t *testing.T) {
	svc := NewPayConfigService(newStubPayConfigRepository())

	cfg, err := svc.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(220), cfg.PayRate.MonthlyDivisorHours)
	assert.Equal(t, "21:00", cfg.Rules.NightStart)
	assert.Equal(t, "06:00", cfg.Rules.NightEnd)
	assert.Equal(t, float64(8), cfg.Rules.BaseDailyHours)
	assert.True(t, cfg.Multipliers.NightOrdinary.Equal(decimal.NewFromFloat(0.35)))
	assert.True(t, cfg.Multipliers.OvertimeNightHoliday.Equal(decimal.NewFromFloat(1.50)))
}

func TestGetPayRatePrefersStoredOverride(t *testing.T) {
	repo := newStubPayConfigRepository()
	require.NoError(t, repo.Set(context.Background(), payconfig.BundleRate, payconfig.PayRateConfig{MonthlyDivisorHours: 230}))
	svc := NewPayConfigService(repo)

	rate, err := svc.GetPayRate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(230), rate.MonthlyDivisorHours)
}

func TestGetRulesRejectsCorruptOverride(t *testing.T) {
	repo := newStubPayConfigRepository()
	repo.docs[payconfig.BundleRules] = json.RawMessage(`{"night_start":"9pm","night_end":"06:00","base_daily_hours":8}`)
	svc := NewPayConfigService(repo)

	_, err := svc.GetRules(context.Background())
	assert.ErrorIs(t, err, payconfig.ErrInvalidConfiguration)
}

func TestUpdateStoresOnlyPresentBundles(t *testing.T) {
	repo := newStubPayConfigRepository()
	svc := NewPayConfigService(repo)

	cfg, err := svc.Update(context.Background(), payconfig.UpdateConfigRequest{
		PayRate: &payconfig.PayRateConfig{MonthlyDivisorHours: 240},
	})
	require.NoError(t, err)

	assert.Equal(t, float64(240), cfg.PayRate.MonthlyDivisorHours)
	// untouched bundles still serve defaults
	assert.Equal(t, "21:00", cfg.Rules.NightStart)
	_, hasRules := repo.docs[payconfig.BundleRules]
	assert.False(t, hasRules)
}

func TestUpdateValidatesBeforeStoring(t *testing.T) {
	repo := newStubPayConfigRepository()
	svc := NewPayConfigService(repo)

	bad := payconfig.DefaultMultipliers()
	bad.HolidayNight = decimal.NewFromFloat(-0.5)

	_, err := svc.Update(context.Background(), payconfig.UpdateConfigRequest{Multipliers: &bad})
	require.ErrorIs(t, err, payconfig.ErrInvalidConfiguration)
	assert.Empty(t, repo.docs)
}

func TestUpdateRules(t *testing.T) {
	svc := NewPayConfigService(newStubPayConfigRepository())

	cfg, err := svc.Update(context.Background(), payconfig.UpdateConfigRequest{
		Rules: &payconfig.SurchargeRules{
			NightStart:     "22:00",
			NightEnd:       "05:00",
			BaseDailyHours: 7.5,
			RoundToMinutes: 15,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "22:00", cfg.Rules.NightStart)
	assert.Equal(t, 15, cfg.Rules.RoundToMinutes)
}
