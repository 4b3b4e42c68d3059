package config

// MillConfig describes the fixed physical characteristics of a deployed
// plant. It is constant for a deployment and never user-editable at runtime;
// the two capacity tiers the business ships differ only in throughput.
type MillConfig struct {
	TPH float64 `json:"tph" yaml:"tph"` // paddy throughput, tonnes per hour

	// By-product yield fractions, measured against raw paddy intake. They are
	// independent material streams and deliberately NOT netted against the
	// recovery rate, so the fractions plus recovery may exceed 100% of paddy
	// mass. Inherited business convention; do not "fix" into a mass balance.
	BranFraction       float64 `json:"bran_fraction" yaml:"bran_fraction"`
	HuskFraction       float64 `json:"husk_fraction" yaml:"husk_fraction"`
	BrokenRiceFraction float64 `json:"broken_rice_fraction" yaml:"broken_rice_fraction"`
}

const (
	defaultBranFraction   = 0.08
	defaultHuskFraction   = 0.20
	defaultBrokenFraction = 0.07
)

// StandardMill returns the standard deployment for a given throughput tier.
func StandardMill(tph float64) MillConfig {
	return MillConfig{
		TPH:                tph,
		BranFraction:       defaultBranFraction,
		HuskFraction:       defaultHuskFraction,
		BrokenRiceFraction: defaultBrokenFraction,
	}
}

// Mill3TPH is the small-capacity deployment.
func Mill3TPH() MillConfig { return StandardMill(3.0) }

// Mill5TPH is the standard-capacity deployment.
func Mill5TPH() MillConfig { return StandardMill(5.0) }
