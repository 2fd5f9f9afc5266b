// Test Type: Unit Test
// Description: Tests for the four annotating stages

package stages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/stages"
	"github.com/fieldworks/farmgate/pkg/store"
	"github.com/fieldworks/farmgate/pkg/types"
)

func TestAnnotatingStages(t *testing.T) {
	tests := []struct {
		name     string
		stage    stages.Stage
		profile  func() config.AppConfig
		wantFlag func(*stages.IntakeContext) bool
		wantSet  bool
	}{
		{
			name:  "non_regular_sets_flag_for_non_regular_user",
			stage: stages.NewNonRegularStage(),
			profile: func() config.AppConfig {
				cfg := defaultProfile()
				cfg.UserType = types.UserNonRegular
				return cfg
			},
			wantFlag: func(c *stages.IntakeContext) bool { return c.NonRegular },
			wantSet:  true,
		},
		{
			name:     "non_regular_leaves_flag_for_regular_user",
			stage:    stages.NewNonRegularStage(),
			profile:  defaultProfile,
			wantFlag: func(c *stages.IntakeContext) bool { return c.NonRegular },
			wantSet:  false,
		},
		{
			name:     "high_priority_sets_flag",
			stage:    stages.NewHighPriorityStage(),
			profile:  defaultProfile,
			wantFlag: func(c *stages.IntakeContext) bool { return c.HighPriority },
			wantSet:  true,
		},
		{
			name:  "high_priority_leaves_flag_when_off",
			stage: stages.NewHighPriorityStage(),
			profile: func() config.AppConfig {
				cfg := defaultProfile()
				cfg.HighPriority = false
				return cfg
			},
			wantFlag: func(c *stages.IntakeContext) bool { return c.HighPriority },
			wantSet:  false,
		},
		{
			name:  "weekend_sets_flag",
			stage: stages.NewWeekendStage(),
			profile: func() config.AppConfig {
				cfg := defaultProfile()
				cfg.Weekend = true
				return cfg
			},
			wantFlag: func(c *stages.IntakeContext) bool { return c.Weekend },
			wantSet:  true,
		},
		{
			name:  "inactive_sets_flag_for_inactive_user",
			stage: stages.NewInactiveStage(),
			profile: func() config.AppConfig {
				cfg := defaultProfile()
				cfg.ActiveUser = false
				return cfg
			},
			wantFlag: func(c *stages.IntakeContext) bool { return c.NonActive },
			wantSet:  true,
		},
		{
			name:     "inactive_leaves_flag_for_active_user",
			stage:    stages.NewInactiveStage(),
			profile:  defaultProfile,
			wantFlag: func(c *stages.IntakeContext) bool { return c.NonActive },
			wantSet:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := store.New()
			ctx := stages.NewContext(testRequest())

			outcome, err := tt.stage.Apply(tt.profile(), sys, ctx)
			require.NoError(t, err)

			assert.Equal(t, stages.Continue, outcome, "annotators never stop")
			assert.Equal(t, tt.wantSet, tt.wantFlag(ctx))
			assert.True(t, sys.Empty(), "annotators never touch the store")
		})
	}
}

func TestAnnotatorsNeverResetFlags(t *testing.T) {
	// Flags are write-once-true: a stage whose condition is false must not
	// clear a flag set earlier in the run.
	ctx := stages.NewContext(testRequest())
	ctx.HighPriority = true
	ctx.NonRegular = true

	cfg := defaultProfile()
	cfg.HighPriority = false

	_, err := stages.NewHighPriorityStage().Apply(cfg, store.New(), ctx)
	require.NoError(t, err)
	assert.True(t, ctx.HighPriority)

	_, err = stages.NewNonRegularStage().Apply(cfg, store.New(), ctx)
	require.NoError(t, err)
	assert.True(t, ctx.NonRegular)
}
