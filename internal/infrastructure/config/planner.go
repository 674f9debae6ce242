package config

// PlannerConfig holds production graph settings
type PlannerConfig struct {
	// MaxNodeVisits bounds how often one node may repeat on a propagation path
	MaxNodeVisits int `mapstructure:"max_node_visits" validate:"min=1,max=16"`

	// DefaultBelt is applied to miners and storage containers that name no belt
	DefaultBelt string `mapstructure:"default_belt" validate:"omitempty,oneof=mk1 mk2 mk3 mk4 mk5 mk6 MK1 MK2 MK3 MK4 MK5 MK6"`

	// DefaultPipe is applied to fluid extractors that name no pipe
	DefaultPipe string `mapstructure:"default_pipe" validate:"omitempty,oneof=mk1 mk2 MK1 MK2"`
}
