// Test Type: Unit Test
// Description: Tests for stage registration and lookup

package stages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/errors"
	"github.com/fieldworks/farmgate/pkg/stages"
	"github.com/fieldworks/farmgate/pkg/types"
)

// defaultProfile mirrors the built-in default configuration profile.
func defaultProfile() config.AppConfig {
	return config.AppConfig{
		SpecialPermission: true,
		UserType:          types.UserRegular,
		Weekend:           false,
		ActiveUser:        true,
		HighPriority:      true,
		Location:          types.LocationWest,
	}
}

func TestBuiltinStagesAreRegistered(t *testing.T) {
	for _, name := range []string{
		stages.PermissionStageName,
		stages.NonRegularStageName,
		stages.HighPriorityStageName,
		stages.WeekendStageName,
		stages.InactiveStageName,
		stages.LocationStageName,
	} {
		t.Run(name, func(t *testing.T) {
			require.True(t, stages.Has(name))

			s, err := stages.Get(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.Name())
			assert.NotEmpty(t, s.Description())
		})
	}

	assert.Len(t, stages.Names(), 6)
}

func TestGetUnknownStage(t *testing.T) {
	_, err := stages.Get("ghost")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStageNotFound))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "continue", stages.Continue.String())
	assert.Equal(t, "stop", stages.Stop.String())
	assert.Equal(t, "unknown", stages.Outcome(42).String())
}
