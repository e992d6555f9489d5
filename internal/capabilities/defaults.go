// Package capabilities provides the built-in projection methods and their
// registration with the capability registry. Each method lives in its own
// subpackage and implements the driven.Capability interface.
//
// Methods are bound to indicators at startup from the scenario's per-
// indicator configuration; there is no dynamic lookup at run time.
package capabilities

import (
	"github.com/veldt-labs/prospekt-cli/internal/capabilities/cagr"
	"github.com/veldt-labs/prospekt-cli/internal/capabilities/holdlast"
	"github.com/veldt-labs/prospekt-cli/internal/capabilities/phaseout"
	"github.com/veldt-labs/prospekt-cli/internal/capabilities/stepdown"
	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driven"
	"github.com/veldt-labs/prospekt-cli/internal/core/services"
)

// Builders returns the builder for every built-in projection method,
// keyed by the method name used in scenario files.
func Builders() map[string]services.CapabilityBuilder {
	return map[string]services.CapabilityBuilder{
		"cagr": func(cfg domain.IndicatorConfig) (driven.Capability, error) {
			return cagr.New(cagr.OptionsFromConfig(cfg)), nil
		},
		"phaseout": func(cfg domain.IndicatorConfig) (driven.Capability, error) {
			opts, err := phaseout.OptionsFromConfig(cfg)
			if err != nil {
				return nil, err
			}
			return phaseout.New(opts), nil
		},
		"stepdown": func(cfg domain.IndicatorConfig) (driven.Capability, error) {
			opts, err := stepdown.OptionsFromConfig(cfg)
			if err != nil {
				return nil, err
			}
			return stepdown.New(opts), nil
		},
		"holdlast": func(cfg domain.IndicatorConfig) (driven.Capability, error) {
			return holdlast.New(), nil
		},
	}
}

// NewRegistry builds a registry wired for the scenario using the built-in
// methods.
func NewRegistry(params domain.ScenarioParameters) (*services.CapabilityRegistry, error) {
	r := services.NewCapabilityRegistry()
	if err := r.Populate(params, Builders()); err != nil {
		return nil, err
	}
	return r, nil
}
