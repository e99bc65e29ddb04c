package config

// PlanetConfig describes the planet to simulate
type PlanetConfig struct {
	// Planet identifier, echoed in every acknowledgment
	ID int `mapstructure:"id" validate:"min=0"`

	// Planet type: A, B, C or D
	Type string `mapstructure:"type" validate:"required,oneof=A B C D a b c d"`

	// Registered AI name (see ai.DefaultRegistry)
	AI string `mapstructure:"ai" validate:"required"`

	// Optional YAML recipe catalog; empty means the built-in oxygen generator
	CatalogPath string `mapstructure:"catalog_path"`
}
