package domain

// HostingImpact is the /hosting-impact calculation result. All figures are
// computed by the backend; the client only formats them.
type HostingImpact struct {
	Provider                string  `json:"provider"`
	Region                  string  `json:"region"`
	Tier                    string  `json:"tier"`
	MonthlyRequests         int64   `json:"monthly_requests"`
	MonthlyEnergyKWh        float64 `json:"monthly_energy_kwh"`
	MonthlyCO2Grams         float64 `json:"monthly_co2_grams"`
	MonthlyCO2Kg            float64 `json:"monthly_co2_kg"`
	YearlyCO2Kg             float64 `json:"yearly_co2_kg"`
	EstimatedMonthlyCostUSD float64 `json:"estimated_monthly_cost_usd"`
	CarbonIntensityRegion   float64 `json:"carbon_intensity_region"`
	ProviderEfficiencyScore float64 `json:"provider_efficiency_score"`
	Timestamp               string  `json:"timestamp,omitempty"`
}

// HostingImpactResponse is the /hosting-impact success envelope.
type HostingImpactResponse struct {
	Success bool           `json:"success"`
	Impact  *HostingImpact `json:"impact"`
}
