// Test Type: Unit Test
// Description: Tests for the terminal location stage

package stages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworks/farmgate/pkg/stages"
	"github.com/fieldworks/farmgate/pkg/store"
	"github.com/fieldworks/farmgate/pkg/types"
)

func TestLocationStageWest(t *testing.T) {
	stage := stages.NewLocationStage()
	sys := store.New()
	ctx := stages.NewContext(testRequest())
	ctx.HighPriority = true

	outcome, err := stage.Apply(defaultProfile(), sys, ctx)
	require.NoError(t, err)
	assert.Equal(t, stages.Stop, outcome, "the terminal stage always stops")

	articles := sys.Articles()
	require.Len(t, articles, 1)
	assert.Equal(t, "Shiitake-HP", articles[0].Name)

	farmers := sys.Farmers()
	require.Len(t, farmers, 1)
	assert.Equal(t, "John", farmers[0].Name, "west farmers carry no -east suffix")

	schedules := sys.Schedules()
	require.Len(t, schedules, 1)
	assert.Same(t, articles[0], schedules[0].Article)
	assert.Equal(t, "2023-10-26", schedules[0].Date)

	qty, ok := sys.Quantity(articles[0])
	require.True(t, ok)
	assert.Equal(t, 10, qty, "west intakes add stock")
}

func TestLocationStageEast(t *testing.T) {
	stage := stages.NewLocationStage()
	cfg := defaultProfile()
	cfg.Location = types.LocationEast

	sys := store.New()
	ctx := stages.NewContext(testRequest())

	outcome, err := stage.Apply(cfg, sys, ctx)
	require.NoError(t, err)
	assert.Equal(t, stages.Stop, outcome)

	farmers := sys.Farmers()
	require.Len(t, farmers, 1)
	assert.Equal(t, "John-east", farmers[0].Name)

	articles := sys.Articles()
	require.Len(t, articles, 1)

	qty, ok := sys.Quantity(articles[0])
	require.True(t, ok)
	assert.Equal(t, -10, qty, "east intakes draw stock down, below zero if need be")
}

func TestLocationStageDecoratedEast(t *testing.T) {
	// East suffix applies after the accumulated context decorations
	stage := stages.NewLocationStage()
	cfg := defaultProfile()
	cfg.Location = types.LocationEast

	sys := store.New()
	ctx := stages.NewContext(testRequest())
	ctx.NonRegular = true
	ctx.NonActive = true

	_, err := stage.Apply(cfg, sys, ctx)
	require.NoError(t, err)

	farmers := sys.Farmers()
	require.Len(t, farmers, 1)
	assert.Equal(t, "John-NR-NA-east", farmers[0].Name)

	schedules := sys.Schedules()
	require.Len(t, schedules, 1)
	assert.Equal(t, "2023-10-26-NR", schedules[0].Date)
}

func TestLocationStageReusesExistingArticle(t *testing.T) {
	stage := stages.NewLocationStage()
	sys := store.New()
	existing := sys.AddArticle("Shiitake")

	ctx := stages.NewContext(testRequest())

	_, err := stage.Apply(defaultProfile(), sys, ctx)
	require.NoError(t, err)

	articles := sys.Articles()
	require.Len(t, articles, 1)
	assert.Same(t, existing, articles[0])
}
