package stages

import (
	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/logging"
	"github.com/fieldworks/farmgate/pkg/store"
)

const PermissionStageName = "permission"

// PermissionStage gates the whole pipeline: without special permission the
// run stops here and the store is never touched.
type PermissionStage struct{}

// NewPermissionStage creates a new PermissionStage
func NewPermissionStage() *PermissionStage {
	return &PermissionStage{}
}

// Name returns the unique name of this stage
func (s *PermissionStage) Name() string {
	return PermissionStageName
}

// Description returns a human-readable description of what this stage does
func (s *PermissionStage) Description() string {
	return "Stops the pipeline when the profile lacks special permission"
}

// Apply stops iff the profile lacks special permission
func (s *PermissionStage) Apply(cfg config.AppConfig, sys *store.FarmStore, ctx *IntakeContext) (Outcome, error) {
	if !cfg.SpecialPermission {
		logger := logging.GetLogger("stages.permission")
		logger.Info().
			Str("article", ctx.Request.Article).
			Msg("No special permission, intake blocked")
		return Stop, nil
	}
	return Continue, nil
}

func init() {
	Register(NewPermissionStage())
}
