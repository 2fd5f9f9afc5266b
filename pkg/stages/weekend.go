package stages

import (
	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/store"
)

const WeekendStageName = "weekend"

// WeekendStage annotates the context for weekend intakes. The flag decorates
// article and farmer names with -weekend.
type WeekendStage struct{}

// NewWeekendStage creates a new WeekendStage
func NewWeekendStage() *WeekendStage {
	return &WeekendStage{}
}

// Name returns the unique name of this stage
func (s *WeekendStage) Name() string {
	return WeekendStageName
}

// Description returns a human-readable description of what this stage does
func (s *WeekendStage) Description() string {
	return "Flags weekend intakes"
}

// Apply sets the weekend flag; never stops
func (s *WeekendStage) Apply(cfg config.AppConfig, sys *store.FarmStore, ctx *IntakeContext) (Outcome, error) {
	if cfg.Weekend {
		ctx.Weekend = true
	}
	return Continue, nil
}

func init() {
	Register(NewWeekendStage())
}
