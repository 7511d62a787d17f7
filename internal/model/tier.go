package model

// Tier names recognized by the tier service.
type Tier string

const (
	TierStarter      Tier = "starter"
	TierProfessional Tier = "professional"
)

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// TierState is the persisted usage snapshot for one user scope.
// Limits live in config, not here — usage counters are plain data.
type TierState struct {
	Tier  Tier           `json:"tier"`
	Usage map[string]int `json:"usage"`
}
