package stages

import (
	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/errors"
	"github.com/fieldworks/farmgate/pkg/registry"
	"github.com/fieldworks/farmgate/pkg/store"
)

// Outcome tells the pipeline whether to continue past a stage.
type Outcome int

const (
	// Continue hands the context to the next stage
	Continue Outcome = iota
	// Stop short-circuits the pipeline; no further stage runs
	Stop
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Stage is one rule handler in the intake pipeline.
type Stage interface {
	// Name returns the unique name this stage is registered under
	Name() string

	// Description returns a human-readable description of what this stage does
	Description() string

	// Apply inspects the profile and mutates the context or the store.
	// The six built-in stages never fail; the error return exists for the
	// interface contract.
	Apply(cfg config.AppConfig, sys *store.FarmStore, ctx *IntakeContext) (Outcome, error)
}

// Global stage registry. Stage implementations register themselves here via
// init(); the pipeline resolves config-listed names against it.
var stageRegistry = registry.New[Stage]()

// Register adds a stage to the global registry. It panics on duplicate or
// empty names since registration happens at init time and a failure there is
// a programming error.
func Register(s Stage) {
	if err := stageRegistry.Register(s.Name(), s); err != nil {
		panic("stages: " + err.Error())
	}
}

// Get retrieves a registered stage by name.
func Get(name string) (Stage, error) {
	s, err := stageRegistry.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStageNotFound, "no stage named %q", name)
	}
	return s, nil
}

// Names returns the names of all registered stages, sorted.
func Names() []string {
	return stageRegistry.List()
}

// Has reports whether a stage with the given name is registered.
func Has(name string) bool {
	return stageRegistry.Has(name)
}
