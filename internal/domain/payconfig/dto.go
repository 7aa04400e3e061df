package payconfig

// ConfigResponse bundles the three active configurations for the admin UI.
type ConfigResponse struct {
	PayRate     PayRateConfig        `json:"pay_rate"`
	Multipliers SurchargeMultipliers `json:"multipliers"`
	Rules       SurchargeRules       `json:"rules"`
}

type UpdateConfigRequest struct {
	PayRate     *PayRateConfig        `json:"pay_rate,omitempty"`
	Multipliers *SurchargeMultipliers `json:"multipliers,omitempty"`
	Rules       *SurchargeRules       `json:"rules,omitempty"`
}

// Validate checks every bundle present in the request. Bundles left nil
// keep their stored (or default) value.
func (r *UpdateConfigRequest) Validate() error {
	if r.PayRate != nil {
		if err := r.PayRate.Validate(); err != nil {
			return err
		}
	}
	if r.Multipliers != nil {
		if err := r.Multipliers.Validate(); err != nil {
			return err
		}
	}
	if r.Rules != nil {
		if err := r.Rules.Validate(); err != nil {
			return err
		}
	}
	return nil
}
