package commands

import (
	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/stages"
)

// StageInfo describes one registered stage.
type StageInfo struct {
	Name        string
	Description string
}

// StagesResult lists the registered stages and the configured run order.
type StagesResult struct {
	// Registered holds every known stage, sorted by name
	Registered []StageInfo

	// Configured is the pipeline order from configuration
	Configured []string
}

// Stages reports the available rule stages and the configured pipeline.
func Stages(configPath string) (*StagesResult, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	result := &StagesResult{Configured: cfg.Pipeline.Stages}
	for _, name := range stages.Names() {
		s, err := stages.Get(name)
		if err != nil {
			return nil, err
		}
		result.Registered = append(result.Registered, StageInfo{
			Name:        s.Name(),
			Description: s.Description(),
		})
	}
	return result, nil
}
