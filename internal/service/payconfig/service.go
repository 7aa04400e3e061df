package payconfig

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payconfig"
)

type PayConfigServiceImpl struct {
	payconfig.PayConfigRepository
}

func NewPayConfigService(payConfigRepository payconfig.PayConfigRepository) payconfig.PayConfigService {
	return &PayConfigServiceImpl{
		PayConfigRepository: payConfigRepository,
	}
}

// GetPayRate implements payconfig.PayConfigService.
func (s *PayConfigServiceImpl) GetPayRate(ctx context.Context) (payconfig.PayRateConfig, error) {
	cfg := payconfig.DefaultPayRate()
	found, err := s.PayConfigRepository.Get(ctx, payconfig.BundleRate, &cfg)
	if err != nil {
		return payconfig.PayRateConfig{}, err
	}
	if found {
		if err := cfg.Validate(); err != nil {
			return payconfig.PayRateConfig{}, err
		}
	}
	return cfg, nil
}

// GetMultipliers implements payconfig.PayConfigService.
func (s *PayConfigServiceImpl) GetMultipliers(ctx context.Context) (payconfig.SurchargeMultipliers, error) {
	cfg := payconfig.DefaultMultipliers()
	found, err := s.PayConfigRepository.Get(ctx, payconfig.BundleMultipliers, &cfg)
	if err != nil {
		return payconfig.SurchargeMultipliers{}, err
	}
	if found {
		if err := cfg.Validate(); err != nil {
			return payconfig.SurchargeMultipliers{}, err
		}
	}
	return cfg, nil
}

// GetRules implements payconfig.PayConfigService.
func (s *PayConfigServiceImpl) GetRules(ctx context.Context) (payconfig.SurchargeRules, error) {
	cfg := payconfig.DefaultRules()
	found, err := s.PayConfigRepository.Get(ctx, payconfig.BundleRules, &cfg)
	if err != nil {
		return payconfig.SurchargeRules{}, err
	}
	if found {
		if err := cfg.Validate(); err != nil {
			return payconfig.SurchargeRules{}, err
		}
	}
	return cfg, nil
}

// GetAll implements payconfig.PayConfigService. The three bundles are
// independent documents, fetched concurrently.
func (s *PayConfigServiceImpl) GetAll(ctx context.Context) (payconfig.ConfigResponse, error) {
	var response payconfig.ConfigResponse

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		response.PayRate, err = s.GetPayRate(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		response.Multipliers, err = s.GetMultipliers(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		response.Rules, err = s.GetRules(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return payconfig.ConfigResponse{}, err
	}

	return response, nil
}

// Update implements payconfig.PayConfigService. Bundles absent from the
// request keep their stored value.
func (s *PayConfigServiceImpl) Update(ctx context.Context, req payconfig.UpdateConfigRequest) (payconfig.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return payconfig.ConfigResponse{}, err
	}

	if req.PayRate != nil {
		if err := s.PayConfigRepository.Set(ctx, payconfig.BundleRate, req.PayRate); err != nil {
			return payconfig.ConfigResponse{}, fmt.Errorf("store pay rate: %w", err)
		}
	}
	if req.Multipliers != nil {
		if err := s.PayConfigRepository.Set(ctx, payconfig.BundleMultipliers, req.Multipliers); err != nil {
			return payconfig.ConfigResponse{}, fmt.Errorf("store multipliers: %w", err)
		}
	}
	if req.Rules != nil {
		if err := s.PayConfigRepository.Set(ctx, payconfig.BundleRules, req.Rules); err != nil {
			return payconfig.ConfigResponse{}, fmt.Errorf("store rules: %w", err)
		}
	}

	return s.GetAll(ctx)
}
