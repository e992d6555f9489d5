package services

import (
	"fmt"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driven"
)

// Ensure CapabilityRegistry implements the interface.
var _ driven.CapabilityRegistry = (*CapabilityRegistry)(nil)

// CapabilityBuilder constructs a capability for one indicator from its
// scenario configuration. Builders are registered per method name.
type CapabilityBuilder func(cfg domain.IndicatorConfig) (driven.Capability, error)

// CapabilityRegistry maps scenario and indicator ids to capabilities.
// It is populated once at process start from the scenario parameters;
// lookups afterwards are pure resolution with no computation.
type CapabilityRegistry struct {
	capabilities map[string]driven.Capability
}

// NewCapabilityRegistry creates an empty registry.
func NewCapabilityRegistry() *CapabilityRegistry {
	return &CapabilityRegistry{capabilities: make(map[string]driven.Capability)}
}

// Register binds a capability to an indicator within a scenario, replacing
// any previous binding.
func (r *CapabilityRegistry) Register(scenarioID, indicatorID string, c driven.Capability) {
	r.capabilities[registryKey(scenarioID, indicatorID)] = c
}

// Populate wires capabilities for every indicator of the scenario whose
// configured method has a registered builder. Indicators with no method or
// an unknown method are left unbound; resolving them later fails with
// domain.ErrNotImplemented, which the engine recovers per indicator.
func (r *CapabilityRegistry) Populate(params domain.ScenarioParameters, builders map[string]CapabilityBuilder) error {
	for id, cfg := range params.Indicators {
		if cfg.Method == "" {
			continue
		}
		build, ok := builders[cfg.Method]
		if !ok {
			continue
		}
		capability, err := build(cfg)
		if err != nil {
			return fmt.Errorf("build %s capability for %s: %w", cfg.Method, id, err)
		}
		r.Register(params.ScenarioID, id, capability)
	}
	return nil
}

// Resolve returns the capability for the indicator and scenario.
func (r *CapabilityRegistry) Resolve(scenarioID, indicatorID string) (driven.Capability, error) {
	c, ok := r.capabilities[registryKey(scenarioID, indicatorID)]
	if !ok {
		return nil, fmt.Errorf("%w: no capability for indicator %s in scenario %s",
			domain.ErrNotImplemented, indicatorID, scenarioID)
	}
	return c, nil
}

func registryKey(scenarioID, indicatorID string) string {
	return scenarioID + "/" + indicatorID
}
