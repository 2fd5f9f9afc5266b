package stages

import (
	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/logging"
	"github.com/fieldworks/farmgate/pkg/store"
	"github.com/fieldworks/farmgate/pkg/types"
)

const LocationStageName = "location"

// LocationStage is the terminal stage. It resolves the decorated article,
// records farmer, schedule and stock according to the profile's location,
// and always stops the pipeline. WEST intakes add stock; EAST intakes record
// the farmer with an -east suffix and draw stock down.
type LocationStage struct{}

// NewLocationStage creates a new LocationStage
func NewLocationStage() *LocationStage {
	return &LocationStage{}
}

// Name returns the unique name of this stage
func (s *LocationStage) Name() string {
	return LocationStageName
}

// Description returns a human-readable description of what this stage does
func (s *LocationStage) Description() string {
	return "Records the intake into the store for the profile's location"
}

// Apply records the intake and stops
func (s *LocationStage) Apply(cfg config.AppConfig, sys *store.FarmStore, ctx *IntakeContext) (Outcome, error) {
	logger := logging.GetLogger("stages.location")

	article := sys.AddArticle(ctx.ArticleName())
	farmer := ctx.FarmerName()

	switch cfg.Location {
	case types.LocationWest:
		sys.AddFarmer(farmer)
		sys.AddSchedule(article, ctx.Date())
		sys.AddStock(article, ctx.Quantity())
	case types.LocationEast:
		sys.AddFarmer(farmer + "-east")
		sys.AddSchedule(article, ctx.Date())
		sys.AddStock(article, -ctx.Quantity())
	}

	logger.Debug().
		Str("article", article.Name).
		Str("farmer", farmer).
		Str("location", cfg.Location.String()).
		Int("quantity", ctx.Quantity()).
		Msg("Intake recorded")

	return Stop, nil
}

func init() {
	Register(NewLocationStage())
}
