package stages

import (
	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/store"
	"github.com/fieldworks/farmgate/pkg/types"
)

const NonRegularStageName = "non-regular"

// NonRegularStage annotates the context when the profile's user is not a
// regular one. The flag decorates article, farmer and date with -NR.
type NonRegularStage struct{}

// NewNonRegularStage creates a new NonRegularStage
func NewNonRegularStage() *NonRegularStage {
	return &NonRegularStage{}
}

// Name returns the unique name of this stage
func (s *NonRegularStage) Name() string {
	return NonRegularStageName
}

// Description returns a human-readable description of what this stage does
func (s *NonRegularStage) Description() string {
	return "Flags intakes from non-regular users"
}

// Apply sets the non-regular flag; never stops
func (s *NonRegularStage) Apply(cfg config.AppConfig, sys *store.FarmStore, ctx *IntakeContext) (Outcome, error) {
	if cfg.UserType != types.UserRegular {
		ctx.NonRegular = true
	}
	return Continue, nil
}

func init() {
	Register(NewNonRegularStage())
}
