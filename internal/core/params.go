package core

// Parameter describes a single configuration value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that publish their configuration
// for display on the overlay panel.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
