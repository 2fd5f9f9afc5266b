package stages

import (
	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/store"
)

const InactiveStageName = "inactive"

// InactiveStage annotates the context when the profile's user is inactive.
// The flag decorates the farmer name with -NA.
type InactiveStage struct{}

// NewInactiveStage creates a new InactiveStage
func NewInactiveStage() *InactiveStage {
	return &InactiveStage{}
}

// Name returns the unique name of this stage
func (s *InactiveStage) Name() string {
	return InactiveStageName
}

// Description returns a human-readable description of what this stage does
func (s *InactiveStage) Description() string {
	return "Flags intakes from inactive users"
}

// Apply sets the non-active flag; never stops
func (s *InactiveStage) Apply(cfg config.AppConfig, sys *store.FarmStore, ctx *IntakeContext) (Outcome, error) {
	if !cfg.ActiveUser {
		ctx.NonActive = true
	}
	return Continue, nil
}

func init() {
	Register(NewInactiveStage())
}
