package payconfig

import "context"

type PayConfigService interface {
	// GetPayRate, GetMultipliers and GetRules return the stored bundle or
	// its default. They never return a bundle that fails validation.
	GetPayRate(ctx context.Context) (PayRateConfig, error)
	GetMultipliers(ctx context.Context) (SurchargeMultipliers, error)
	GetRules(ctx context.Context) (SurchargeRules, error)

	// GetAll fetches the three bundles concurrently.
	GetAll(ctx context.Context) (ConfigResponse, error)

	// Update validates and stores the bundles present in the request.
	Update(ctx context.Context, req UpdateConfigRequest) (ConfigResponse, error)
}
