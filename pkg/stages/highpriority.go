package stages

import (
	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/store"
)

const HighPriorityStageName = "high-priority"

// HighPriorityStage annotates the context for high-priority profiles. The
// flag decorates the article name with -HP.
type HighPriorityStage struct{}

// NewHighPriorityStage creates a new HighPriorityStage
func NewHighPriorityStage() *HighPriorityStage {
	return &HighPriorityStage{}
}

// Name returns the unique name of this stage
func (s *HighPriorityStage) Name() string {
	return HighPriorityStageName
}

// Description returns a human-readable description of what this stage does
func (s *HighPriorityStage) Description() string {
	return "Flags high-priority intakes"
}

// Apply sets the high-priority flag; never stops
func (s *HighPriorityStage) Apply(cfg config.AppConfig, sys *store.FarmStore, ctx *IntakeContext) (Outcome, error) {
	if cfg.HighPriority {
		ctx.HighPriority = true
	}
	return Continue, nil
}

func init() {
	Register(NewHighPriorityStage())
}
