package domain

// MutationRates holds the independent per-operator probabilities used when
// mutating a genome. Every rate is drawn separately; they are not a
// distribution over operators.
type MutationRates struct {
	// State mutation rates.
	DeleteState          float64 `yaml:"delete_state" json:"delete_state"`
	CreateState          float64 `yaml:"create_state" json:"create_state"`
	ModifyStateStart     float64 `yaml:"modify_state_start" json:"modify_state_start"`
	ModifyStateAccepting float64 `yaml:"modify_state_accepting" json:"modify_state_accepting"`

	// Transition mutation rates.
	DropTransition           float64 `yaml:"drop_transition" json:"drop_transition"`
	SpawnTransition          float64 `yaml:"spawn_transition" json:"spawn_transition"`
	ModifyTransitionSource   float64 `yaml:"modify_transition_source" json:"modify_transition_source"`
	ModifyTransitionTarget   float64 `yaml:"modify_transition_target" json:"modify_transition_target"`
	ModifyTransitionSymbol   float64 `yaml:"modify_transition_symbol" json:"modify_transition_symbol"`
	ModifyTransitionEmission float64 `yaml:"modify_transition_emission" json:"modify_transition_emission"`
}

// DefaultRates returns the historically tuned defaults.
func DefaultRates() MutationRates {
	return MutationRates{
		DeleteState:              0.04,
		CreateState:              0.04,
		ModifyStateStart:         0.01,
		ModifyStateAccepting:     0.04,
		DropTransition:           0.04,
		SpawnTransition:          0.04,
		ModifyTransitionSource:   0.04,
		ModifyTransitionTarget:   0.04,
		ModifyTransitionSymbol:   0.04,
		ModifyTransitionEmission: 0.04,
	}
}
